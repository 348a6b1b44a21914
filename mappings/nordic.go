package mappings

import (
	"github.com/juho05/diacritics"
	"github.com/juho05/diacritics/util"
)

type Swedish struct{}

var swedish = map[rune]diacritics.Replacement{
	'å': {Base: "a"},
	'ä': {Base: "a"},
	'ö': {Base: "o"},
	'é': {Base: "e"},
}

func (Swedish) Name() string { return "swedish" }

func (Swedish) Mapping() map[rune]diacritics.Replacement { return clone(swedish) }

type Norwegian struct{}

var norwegian = map[rune]diacritics.Replacement{
	'æ': {Base: "ae", Upper: util.ToPtr("Ae")},
	'ø': {Base: "o"},
	'å': {Base: "a"},
	'é': {Base: "e"},
	'è': {Base: "e"},
	'ê': {Base: "e"},
	'ó': {Base: "o"},
	'ò': {Base: "o"},
	'ô': {Base: "o"},
}

func (Norwegian) Name() string { return "norwegian" }

func (Norwegian) Mapping() map[rune]diacritics.Replacement { return clone(norwegian) }

// Danish uses the traditional two letter spellings (Århus -> Aarhus).
type Danish struct{}

var danish = map[rune]diacritics.Replacement{
	'æ': {Base: "ae", Upper: util.ToPtr("Ae")},
	'ø': {Base: "oe", Upper: util.ToPtr("Oe")},
	'å': {Base: "aa", Upper: util.ToPtr("Aa")},
	'é': {Base: "e"},
}

func (Danish) Name() string { return "danish" }

func (Danish) Mapping() map[rune]diacritics.Replacement { return clone(danish) }

type Icelandic struct{}

var icelandic = map[rune]diacritics.Replacement{
	'á': {Base: "a"},
	'é': {Base: "e"},
	'í': {Base: "i"},
	'ó': {Base: "o"},
	'ú': {Base: "u"},
	'ý': {Base: "y"},
	'ö': {Base: "o"},
	'ð': {Base: "d"},
	'þ': {Base: "th", Upper: util.ToPtr("Th")},
	'æ': {Base: "ae", Upper: util.ToPtr("Ae")},
}

func (Icelandic) Name() string { return "icelandic" }

func (Icelandic) Mapping() map[rune]diacritics.Replacement { return clone(icelandic) }

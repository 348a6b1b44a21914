package mappings

import "github.com/juho05/diacritics"

type Polish struct{}

var polish = map[rune]diacritics.Replacement{
	'ą': {Base: "a"},
	'ć': {Base: "c"},
	'ę': {Base: "e"},
	'ł': {Base: "l"},
	'ń': {Base: "n"},
	'ó': {Base: "o"},
	'ś': {Base: "s"},
	'ź': {Base: "z"},
	'ż': {Base: "z"},
}

func (Polish) Name() string { return "polish" }

func (Polish) Mapping() map[rune]diacritics.Replacement { return clone(polish) }

type Czech struct{}

var czech = map[rune]diacritics.Replacement{
	'á': {Base: "a"},
	'č': {Base: "c"},
	'ď': {Base: "d"},
	'é': {Base: "e"},
	'ě': {Base: "e"},
	'í': {Base: "i"},
	'ň': {Base: "n"},
	'ó': {Base: "o"},
	'ř': {Base: "r"},
	'š': {Base: "s"},
	'ť': {Base: "t"},
	'ú': {Base: "u"},
	'ů': {Base: "u"},
	'ý': {Base: "y"},
	'ž': {Base: "z"},
}

func (Czech) Name() string { return "czech" }

func (Czech) Mapping() map[rune]diacritics.Replacement { return clone(czech) }

type Slovak struct{}

var slovak = map[rune]diacritics.Replacement{
	'á': {Base: "a"},
	'ä': {Base: "a"},
	'č': {Base: "c"},
	'ď': {Base: "d"},
	'é': {Base: "e"},
	'í': {Base: "i"},
	'ĺ': {Base: "l"},
	'ľ': {Base: "l"},
	'ň': {Base: "n"},
	'ó': {Base: "o"},
	'ô': {Base: "o"},
	'ŕ': {Base: "r"},
	'š': {Base: "s"},
	'ť': {Base: "t"},
	'ú': {Base: "u"},
	'ý': {Base: "y"},
	'ž': {Base: "z"},
}

func (Slovak) Name() string { return "slovak" }

func (Slovak) Mapping() map[rune]diacritics.Replacement { return clone(slovak) }

// Croatian also covers the dž ligature. Its titlecase form ǅ is not uppercase
// and therefore takes the lowercase branch.
type Croatian struct{}

var croatian = map[rune]diacritics.Replacement{
	'č': {Base: "c"},
	'ć': {Base: "c"},
	'đ': {Base: "d"},
	'š': {Base: "s"},
	'ž': {Base: "z"},
	'ǆ': {Base: "dz"},
}

func (Croatian) Name() string { return "croatian" }

func (Croatian) Mapping() map[rune]diacritics.Replacement { return clone(croatian) }

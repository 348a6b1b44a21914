package mappings

import (
	"github.com/juho05/diacritics"
	"github.com/juho05/diacritics/util"
)

// German follows the DIN 5007-2 spelling used for names: umlauts expand to two
// letters and only the first one keeps the case of the source character.
type German struct{}

var german = map[rune]diacritics.Replacement{
	'ä': {Base: "ae", Upper: util.ToPtr("Ae")},
	'ö': {Base: "oe", Upper: util.ToPtr("Oe")},
	'ü': {Base: "ue", Upper: util.ToPtr("Ue")},
	'ß': {Base: "ss"},
}

func (German) Name() string { return "german" }

func (German) Mapping() map[rune]diacritics.Replacement { return clone(german) }

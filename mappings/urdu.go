package mappings

import "github.com/juho05/diacritics"

// Urdu has no letter case, so every rule takes the Base branch.
type Urdu struct{}

var urdu = map[rune]diacritics.Replacement{
	'آ': {Base: "ا"},
	'أ': {Base: "ا"},
	'ؤ': {Base: "و"},
	'ئ': {Base: "ي"},
	'ۂ': {Base: "ہ"},
}

func (Urdu) Name() string { return "urdu" }

func (Urdu) Mapping() map[rune]diacritics.Replacement { return clone(urdu) }

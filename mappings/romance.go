package mappings

import "github.com/juho05/diacritics"

type French struct{}

var french = map[rune]diacritics.Replacement{
	'à': {Base: "a"},
	'â': {Base: "a"},
	'æ': {Base: "ae"},
	'ç': {Base: "c"},
	'é': {Base: "e"},
	'è': {Base: "e"},
	'ê': {Base: "e"},
	'ë': {Base: "e"},
	'î': {Base: "i"},
	'ï': {Base: "i"},
	'ô': {Base: "o"},
	'œ': {Base: "oe"},
	'ù': {Base: "u"},
	'û': {Base: "u"},
	'ü': {Base: "u"},
	'ÿ': {Base: "y"},
}

func (French) Name() string { return "french" }

func (French) Mapping() map[rune]diacritics.Replacement { return clone(french) }

type Spanish struct{}

var spanish = map[rune]diacritics.Replacement{
	'á': {Base: "a"},
	'é': {Base: "e"},
	'í': {Base: "i"},
	'ó': {Base: "o"},
	'ú': {Base: "u"},
	'ü': {Base: "u"},
	'ñ': {Base: "n"},
}

func (Spanish) Name() string { return "spanish" }

func (Spanish) Mapping() map[rune]diacritics.Replacement { return clone(spanish) }

type Portuguese struct{}

var portuguese = map[rune]diacritics.Replacement{
	'á': {Base: "a"},
	'â': {Base: "a"},
	'ã': {Base: "a"},
	'à': {Base: "a"},
	'ç': {Base: "c"},
	'é': {Base: "e"},
	'ê': {Base: "e"},
	'í': {Base: "i"},
	'ó': {Base: "o"},
	'ô': {Base: "o"},
	'õ': {Base: "o"},
	'ú': {Base: "u"},
	'ü': {Base: "u"},
}

func (Portuguese) Name() string { return "portuguese" }

func (Portuguese) Mapping() map[rune]diacritics.Replacement { return clone(portuguese) }

type Romanian struct{}

// Both the comma below and the legacy cedilla forms of s and t are in use.
var romanian = map[rune]diacritics.Replacement{
	'ă': {Base: "a"},
	'â': {Base: "a"},
	'î': {Base: "i"},
	'ș': {Base: "s"},
	'ş': {Base: "s"},
	'ț': {Base: "t"},
	'ţ': {Base: "t"},
}

func (Romanian) Name() string { return "romanian" }

func (Romanian) Mapping() map[rune]diacritics.Replacement { return clone(romanian) }

package mappings

import "github.com/juho05/diacritics"

type Hungarian struct{}

var hungarian = map[rune]diacritics.Replacement{
	'á': {Base: "a"},
	'é': {Base: "e"},
	'í': {Base: "i"},
	'ó': {Base: "o"},
	'ö': {Base: "o"},
	'ő': {Base: "o"},
	'ú': {Base: "u"},
	'ü': {Base: "u"},
	'ű': {Base: "u"},
}

func (Hungarian) Name() string { return "hungarian" }

func (Hungarian) Mapping() map[rune]diacritics.Replacement { return clone(hungarian) }

// Turkish maps the dotless ı. The dotted capital İ lowercases to a plain i
// and is therefore never replaced.
type Turkish struct{}

var turkish = map[rune]diacritics.Replacement{
	'ç': {Base: "c"},
	'ğ': {Base: "g"},
	'ı': {Base: "i"},
	'ö': {Base: "o"},
	'ş': {Base: "s"},
	'ü': {Base: "u"},
}

func (Turkish) Name() string { return "turkish" }

func (Turkish) Mapping() map[rune]diacritics.Replacement { return clone(turkish) }

type Latvian struct{}

var latvian = map[rune]diacritics.Replacement{
	'ā': {Base: "a"},
	'č': {Base: "c"},
	'ē': {Base: "e"},
	'ģ': {Base: "g"},
	'ī': {Base: "i"},
	'ķ': {Base: "k"},
	'ļ': {Base: "l"},
	'ņ': {Base: "n"},
	'š': {Base: "s"},
	'ū': {Base: "u"},
	'ž': {Base: "z"},
}

func (Latvian) Name() string { return "latvian" }

func (Latvian) Mapping() map[rune]diacritics.Replacement { return clone(latvian) }

type Lithuanian struct{}

var lithuanian = map[rune]diacritics.Replacement{
	'ą': {Base: "a"},
	'č': {Base: "c"},
	'ę': {Base: "e"},
	'ė': {Base: "e"},
	'į': {Base: "i"},
	'š': {Base: "s"},
	'ų': {Base: "u"},
	'ū': {Base: "u"},
	'ž': {Base: "z"},
}

func (Lithuanian) Name() string { return "lithuanian" }

func (Lithuanian) Mapping() map[rune]diacritics.Replacement { return clone(lithuanian) }

// Greek strips tonos and dialytika but keeps the Greek script.
type Greek struct{}

var greek = map[rune]diacritics.Replacement{
	'ά': {Base: "α"},
	'έ': {Base: "ε"},
	'ή': {Base: "η"},
	'ί': {Base: "ι"},
	'ϊ': {Base: "ι"},
	'ΐ': {Base: "ι"},
	'ό': {Base: "ο"},
	'ύ': {Base: "υ"},
	'ϋ': {Base: "υ"},
	'ΰ': {Base: "υ"},
	'ώ': {Base: "ω"},
}

func (Greek) Name() string { return "greek" }

func (Greek) Mapping() map[rune]diacritics.Replacement { return clone(greek) }

package mappings

import "github.com/juho05/diacritics"

type Finnish struct{}

var finnish = map[rune]diacritics.Replacement{
	'Ä': {Base: "A"},
	'Å': {Base: "A"},
	'Ö': {Base: "O"},
	'ä': {Base: "a"},
	'å': {Base: "a"},
	'ö': {Base: "o"},
	'Š': {Base: "S"},
	'š': {Base: "s"},
	'Ž': {Base: "Z"},
	'ž': {Base: "z"},
}

func (Finnish) Name() string { return "finnish" }

func (Finnish) Mapping() map[rune]diacritics.Replacement { return clone(finnish) }

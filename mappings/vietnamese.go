package mappings

import "github.com/juho05/diacritics"

// Vietnamese removes both the vowel modifiers and the tone marks.
type Vietnamese struct{}

var vietnamese = map[rune]diacritics.Replacement{
	'đ': {Base: "d"},

	'à': {Base: "a"}, 'á': {Base: "a"}, 'ả': {Base: "a"}, 'ã': {Base: "a"}, 'ạ': {Base: "a"},
	'ă': {Base: "a"}, 'ằ': {Base: "a"}, 'ắ': {Base: "a"}, 'ẳ': {Base: "a"}, 'ẵ': {Base: "a"}, 'ặ': {Base: "a"},
	'â': {Base: "a"}, 'ầ': {Base: "a"}, 'ấ': {Base: "a"}, 'ẩ': {Base: "a"}, 'ẫ': {Base: "a"}, 'ậ': {Base: "a"},

	'è': {Base: "e"}, 'é': {Base: "e"}, 'ẻ': {Base: "e"}, 'ẽ': {Base: "e"}, 'ẹ': {Base: "e"},
	'ê': {Base: "e"}, 'ề': {Base: "e"}, 'ế': {Base: "e"}, 'ể': {Base: "e"}, 'ễ': {Base: "e"}, 'ệ': {Base: "e"},

	'ì': {Base: "i"}, 'í': {Base: "i"}, 'ỉ': {Base: "i"}, 'ĩ': {Base: "i"}, 'ị': {Base: "i"},

	'ò': {Base: "o"}, 'ó': {Base: "o"}, 'ỏ': {Base: "o"}, 'õ': {Base: "o"}, 'ọ': {Base: "o"},
	'ô': {Base: "o"}, 'ồ': {Base: "o"}, 'ố': {Base: "o"}, 'ổ': {Base: "o"}, 'ỗ': {Base: "o"}, 'ộ': {Base: "o"},
	'ơ': {Base: "o"}, 'ờ': {Base: "o"}, 'ớ': {Base: "o"}, 'ở': {Base: "o"}, 'ỡ': {Base: "o"}, 'ợ': {Base: "o"},

	'ù': {Base: "u"}, 'ú': {Base: "u"}, 'ủ': {Base: "u"}, 'ũ': {Base: "u"}, 'ụ': {Base: "u"},
	'ư': {Base: "u"}, 'ừ': {Base: "u"}, 'ứ': {Base: "u"}, 'ử': {Base: "u"}, 'ữ': {Base: "u"}, 'ự': {Base: "u"},

	'ỳ': {Base: "y"}, 'ý': {Base: "y"}, 'ỷ': {Base: "y"}, 'ỹ': {Base: "y"}, 'ỵ': {Base: "y"},
}

func (Vietnamese) Name() string { return "vietnamese" }

func (Vietnamese) Mapping() map[rune]diacritics.Replacement { return clone(vietnamese) }

package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"the empty string stays the empty string", "", ""},
		{"precomposed characters stay unchanged", "äö", "äö"},
		{"combining marks are composed", "a\u0308o\u0308", "äö"},
		{"ascii stays unchanged", "Hello World", "Hello World"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(tt.text))
		})
	}
}

func TestNormalizeText(t *testing.T) {
	stripUmlauts := strings.NewReplacer("ä", "a", "Ä", "A", "ö", "o", "Ö", "O").Replace
	tests := []struct {
		name string
		text string
		want string
	}{
		{"the empty string stays the empty string", "", ""},
		{"whitespace is correctly normalized", "  asdf\t  test   bla\r\n", " asdf test bla "},
		{"text is converted to lowercase", "AaBbCcDd", "aabbccdd"},
		{"diacritics are removed", "ÄÄKKÖSET", "aakkoset"},
		{"decomposed input is composed before removal", "A\u0308iti", "aiti"},
		{"special characters are removed", "Hello, world!", "hello world"},
		{"unmapped characters are kept", "é", "é"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized := NormalizeText(tt.text, stripUmlauts)
			assert.Equalf(t, tt.want, normalized, "normalized bytes: %v, wanted: %v", []byte(normalized), []byte(tt.want))
		})
	}
}

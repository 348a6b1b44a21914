package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPtr(t *testing.T) {
	type testCase struct {
		name  string
		value string
	}
	tests := []testCase{
		{"empty string should result in a pointer to the empty string", ""},
		{"ae should result in a pointer to ae", "ae"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ptr := ToPtr(tt.value)
			assert.NotNil(t, ptr)
			assert.Equal(t, tt.value, *ptr)
		})
	}
}

func TestValOr(t *testing.T) {
	type testCase struct {
		name string
		p    *string
		def  string
		want string
	}
	tests := []testCase{
		{"nil pointer should return the default", nil, "-", "-"},
		{"pointer to empty string should return the empty string", ToPtr(""), "-", ""},
		{"pointer should return its value", ToPtr("Th"), "-", "Th"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValOr(tt.p, tt.def))
		})
	}
}

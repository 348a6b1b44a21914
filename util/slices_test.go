package util

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	type testCase struct {
		name string
		s    []int
		want []string
	}
	tests := []testCase{
		{"nil slice should result in a nil slice", nil, nil},
		{"empty slice should result in an empty slice", make([]int, 0), make([]string, 0)},
		{"should map slice with one element", []int{42}, []string{"42"}},
		{"should map slice with three elements", []int{1, 2, 3}, []string{"1", "2", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Map(tt.s, func(t int) string {
				return strconv.Itoa(t)
			}))
		})
	}
}

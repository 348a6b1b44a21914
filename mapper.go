package diacritics

import (
	"iter"
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/juho05/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Options configures a single RemoveDiacritics or HasDiacritics call.
// No options are defined yet; nil and &Options{} behave the same.
type Options struct{}

type entry struct {
	rule  Replacement
	upper string
	lower string
}

// Mapper removes diacritics using the merged mappings of a list of providers.
// A Mapper is immutable and safe for concurrent use.
type Mapper struct {
	names []string
	keys  []rune
	table map[rune]entry
}

// New merges the mappings of providers into a new Mapper.
//
// When several providers map the same character the first one in argument order wins
// and the later rules are dropped. Keys of a single provider are merged in code point
// order, so the enumeration order of the result does not depend on map iteration.
func New(providers ...Provider) *Mapper {
	m := &Mapper{
		table: make(map[rune]entry),
	}
	owners := make(map[rune]string)
	upper := cases.Upper(language.Und)
	for _, p := range providers {
		if p == nil {
			continue
		}
		m.names = append(m.names, p.Name())
		mapping := p.Mapping()
		for _, k := range slices.Sorted(maps.Keys(mapping)) {
			if owner, ok := owners[k]; ok {
				log.Tracef("diacritics: %s: %q is already mapped by %s, skipping", p.Name(), k, owner)
				continue
			}
			rule := mapping[k].clone()
			e := entry{
				rule:  rule,
				upper: upper.String(rule.Base),
				lower: rule.Base,
			}
			if rule.Upper != nil {
				e.upper = *rule.Upper
			}
			if rule.Lower != nil {
				e.lower = *rule.Lower
			}
			owners[k] = p.Name()
			m.keys = append(m.keys, k)
			m.table[k] = e
		}
	}
	return m
}

// RemoveDiacritics replaces every mapped character in input with its replacement.
//
// Characters are looked up by their lowercase form. Uppercase characters are replaced
// with the Upper override or the uppercased Base, all other characters with the Lower
// override or Base. Unmapped characters and invalid UTF-8 are copied unchanged.
//
// Case mapping uses the fixed Unicode tables of the unicode and x/text/cases packages
// and never depends on the process locale.
func (m *Mapper) RemoveDiacritics(input string, opts *Options) string {
	if strings.TrimSpace(input) == "" {
		return input
	}

	var b strings.Builder
	start := 0
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		e, ok := m.table[unicode.ToLower(r)]
		if !ok {
			i += size
			continue
		}
		if b.Cap() == 0 {
			b.Grow(len(input) + len(input)/2)
		}
		b.WriteString(input[start:i])
		if unicode.IsUpper(r) {
			b.WriteString(e.upper)
		} else {
			b.WriteString(e.lower)
		}
		i += size
		start = i
	}
	if start == 0 {
		return input
	}
	b.WriteString(input[start:])
	return b.String()
}

// HasDiacritics reports whether RemoveDiacritics would change source.
func (m *Mapper) HasDiacritics(source string, opts *Options) bool {
	return m.RemoveDiacritics(source, opts) != source
}

// All returns an iterator over the merged characters and their base replacements.
// The order is the order in which characters were first merged and never changes.
func (m *Mapper) All() iter.Seq2[rune, string] {
	return func(yield func(rune, string) bool) {
		for _, k := range m.keys {
			if !yield(k, m.table[k].rule.Base) {
				return
			}
		}
	}
}

// Lookup returns a copy of the rule merged for r.
// r is matched exactly, without case folding.
func (m *Mapper) Lookup(r rune) (Replacement, bool) {
	e, ok := m.table[r]
	if !ok {
		return Replacement{}, false
	}
	return e.rule.clone(), true
}

// Len returns the number of merged characters.
func (m *Mapper) Len() int {
	return len(m.keys)
}

// Providers returns the names of the merged providers in precedence order.
func (m *Mapper) Providers() []string {
	return append(make([]string, 0, len(m.names)), m.names...)
}

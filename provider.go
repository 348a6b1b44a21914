package diacritics

// Replacement describes what a diacritic character is replaced with.
// Upper and Lower are only set when the language requires something other than
// the case-folded Base. A non-nil empty override removes the character entirely.
type Replacement struct {
	Base  string
	Upper *string
	Lower *string
}

// Provider is a named source of accent mappings, usually one per language or script.
// Mapping must not have side effects and must return the same data on every call.
type Provider interface {
	Name() string
	Mapping() map[rune]Replacement
}

type staticProvider struct {
	name    string
	mapping map[rune]Replacement
}

// NewProvider returns a Provider serving a copy of mapping.
// Later changes to mapping are not visible through the returned provider.
func NewProvider(name string, mapping map[rune]Replacement) Provider {
	return staticProvider{
		name:    name,
		mapping: cloneMapping(mapping),
	}
}

func (s staticProvider) Name() string {
	return s.name
}

func (s staticProvider) Mapping() map[rune]Replacement {
	return cloneMapping(s.mapping)
}

func cloneMapping(mapping map[rune]Replacement) map[rune]Replacement {
	clone := make(map[rune]Replacement, len(mapping))
	for k, v := range mapping {
		clone[k] = v.clone()
	}
	return clone
}

func (r Replacement) clone() Replacement {
	return Replacement{
		Base:  r.Base,
		Upper: cloneOverride(r.Upper),
		Lower: cloneOverride(r.Lower),
	}
}

func cloneOverride(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// Package mappings contains the built-in accent mapping providers, one per language.
//
// All providers only map lowercase characters (Finnish additionally lists its
// uppercase letters). The mapper looks characters up by their lowercase form and
// restores the case itself.
package mappings

import (
	"fmt"
	"strings"

	"github.com/juho05/diacritics"
)

// UnknownLanguageError is returned by Resolve for names without a built-in provider.
type UnknownLanguageError struct {
	Name string
}

func (u UnknownLanguageError) Error() string {
	return fmt.Sprintf("unknown language: %s", u.Name)
}

// All returns every built-in provider.
// Tables folding to single base letters come first, so merging All in order
// prefers "a" over the two letter spellings of German and Danish for ä and å.
func All() []diacritics.Provider {
	return []diacritics.Provider{
		Finnish{},
		Swedish{},
		French{},
		Spanish{},
		Portuguese{},
		Polish{},
		Czech{},
		Slovak{},
		Hungarian{},
		Romanian{},
		Croatian{},
		Turkish{},
		Latvian{},
		Lithuanian{},
		Vietnamese{},
		Greek{},
		Icelandic{},
		Norwegian{},
		Danish{},
		German{},
		Urdu{},
	}
}

// Names returns the names of All in the same order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name()
	}
	return names
}

// ByName returns the built-in provider called name, ignoring case.
func ByName(name string) (diacritics.Provider, bool) {
	name = strings.TrimSpace(name)
	for _, p := range All() {
		if strings.EqualFold(p.Name(), name) {
			return p, true
		}
	}
	return nil, false
}

// Resolve returns the providers for names in the given order.
func Resolve(names []string) ([]diacritics.Provider, error) {
	providers := make([]diacritics.Provider, 0, len(names))
	for _, n := range names {
		p, ok := ByName(n)
		if !ok {
			return nil, UnknownLanguageError{Name: n}
		}
		providers = append(providers, p)
	}
	return providers, nil
}

func clone(mapping map[rune]diacritics.Replacement) map[rune]diacritics.Replacement {
	c := make(map[rune]diacritics.Replacement, len(mapping))
	for k, v := range mapping {
		if v.Upper != nil {
			u := *v.Upper
			v.Upper = &u
		}
		if v.Lower != nil {
			l := *v.Lower
			v.Lower = &l
		}
		c[k] = v
	}
	return c
}

package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/juho05/diacritics"
	"github.com/juho05/diacritics/mappings"
	"github.com/juho05/log"
)

// ProviderNamePrefix is prepended to the name of a mapping set to get the name of its provider.
const ProviderNamePrefix = "custom:"

// LoadProviders reads the mapping sets called names and returns one provider per set in
// the same order. The rules are copied, later changes in the database do not affect
// the returned providers.
func LoadProviders(ctx context.Context, repo MappingSetRepository, names []string) ([]diacritics.Provider, error) {
	providers := make([]diacritics.Provider, 0, len(names))
	for _, name := range names {
		set, err := repo.FindByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("load providers: find mapping set %s: %w", name, err)
		}
		rules, err := repo.FindRules(ctx, set.ID)
		if err != nil {
			return nil, fmt.Errorf("load providers: find rules of %s: %w", name, err)
		}
		mapping := make(map[rune]diacritics.Replacement, len(rules))
		for _, rule := range rules {
			char, ok := rule.Rune()
			if !ok {
				log.Warnf("mapping set %s: skipping rule for invalid character %q", name, rule.Char)
				continue
			}
			mapping[char] = diacritics.Replacement{
				Base:  rule.Base,
				Upper: rule.UpperOverride,
				Lower: rule.LowerOverride,
			}
		}
		log.Tracef("loaded %d rules from mapping set %s", len(mapping), name)
		providers = append(providers, diacritics.NewProvider(ProviderNamePrefix+set.Name, mapping))
	}
	return providers, nil
}

// BuildMapper merges the built-in languages and the custom mapping sets stored in db
// into a new Mapper. If customFirst is true the custom sets take precedence over the
// built-in languages. db may be nil if customSets is empty.
func BuildMapper(ctx context.Context, db DB, languages, customSets []string, customFirst bool) (*diacritics.Mapper, error) {
	builtin, err := mappings.Resolve(languages)
	if err != nil {
		return nil, fmt.Errorf("build mapper: %w", err)
	}
	var custom []diacritics.Provider
	if len(customSets) > 0 {
		if db == nil {
			return nil, errors.New("build mapper: custom mapping sets require a database")
		}
		err = db.Transaction(ctx, func(tx Tx) error {
			custom, err = LoadProviders(ctx, tx.MappingSet(), customSets)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("build mapper: %w", err)
		}
	}
	var providers []diacritics.Provider
	if customFirst {
		providers = append(custom, builtin...)
	} else {
		providers = append(builtin, custom...)
	}
	m := diacritics.New(providers...)
	log.Tracef("built mapper with %d characters from %d providers", m.Len(), len(providers))
	return m, nil
}

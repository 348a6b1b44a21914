package repos

import (
	"context"
	"time"
	"unicode/utf8"
)

// models

type MappingSet struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Created     time.Time `db:"created"`
	Updated     time.Time `db:"updated"`
}

type MappingRule struct {
	SetID         string    `db:"set_id"`
	Char          string    `db:"char"`
	Base          string    `db:"base"`
	UpperOverride *string   `db:"upper_override"`
	LowerOverride *string   `db:"lower_override"`
	Created       time.Time `db:"created"`
}

// Rune returns the character the rule maps.
// ok is false if Char does not consist of exactly one valid rune.
func (m MappingRule) Rune() (r rune, ok bool) {
	r, size := utf8.DecodeRuneInString(m.Char)
	if r == utf8.RuneError || size != len(m.Char) {
		return 0, false
	}
	return r, true
}

// params

type CreateMappingSetParams struct {
	Name        string
	Description *string
}

type UpdateMappingSetParams struct {
	Name        Optional[string]
	Description Optional[*string]
}

type SetMappingRuleParams struct {
	Char          rune
	Base          string
	UpperOverride *string
	LowerOverride *string
}

type MappingSetRepository interface {
	// Create creates a new mapping set.
	// If a mapping set with the same name exists, ErrExists will be returned.
	Create(ctx context.Context, params CreateMappingSetParams) (*MappingSet, error)
	// FindAll returns all mapping sets ordered by creation time.
	FindAll(ctx context.Context) ([]*MappingSet, error)
	// FindByName returns the mapping set with the provided name.
	// If no mapping set with the provided name is found, ErrNotFound will be returned.
	FindByName(ctx context.Context, name string) (*MappingSet, error)
	// Update updates an existing mapping set.
	// If no mapping set with the provided name is found, ErrNotFound will be returned.
	Update(ctx context.Context, name string, params UpdateMappingSetParams) error
	// Delete removes a mapping set and all of its rules.
	// If no mapping set with the provided name is found, ErrNotFound will be returned.
	Delete(ctx context.Context, name string) error

	// FindRules returns all rules of the mapping set ordered by character.
	FindRules(ctx context.Context, setID string) ([]*MappingRule, error)
	// SetRule creates or replaces the rule for params.Char in the mapping set.
	// If params.Char is not a valid character, ErrInvalidParams will be returned.
	SetRule(ctx context.Context, setID string, params SetMappingRuleParams) error
	// DeleteRule removes the rule for char from the mapping set.
	// If the mapping set has no rule for char, ErrNotFound will be returned.
	DeleteRule(ctx context.Context, setID string, char rune) error
}

package postgres

import (
	"context"
	"unicode/utf8"

	"github.com/juho05/diacritics"
	"github.com/juho05/diacritics/repos"
	"github.com/nullism/bqb"
)

type mappingSetRepository struct {
	db executer
	tx func(ctx context.Context, fn func(m mappingSetRepository) error) error
}

func (m mappingSetRepository) Create(ctx context.Context, params repos.CreateMappingSetParams) (*repos.MappingSet, error) {
	q := bqb.New(`INSERT INTO mapping_sets (id,name,description,created,updated)
	VALUES (?,?,?,NOW(),NOW()) RETURNING *`, diacritics.GenIDMappingSet(), params.Name, params.Description)
	return getQuery[*repos.MappingSet](ctx, m.db, q)
}

func (m mappingSetRepository) FindAll(ctx context.Context) ([]*repos.MappingSet, error) {
	return selectQuery[*repos.MappingSet](ctx, m.db, bqb.New("SELECT * FROM mapping_sets ORDER BY created, name"))
}

func (m mappingSetRepository) FindByName(ctx context.Context, name string) (*repos.MappingSet, error) {
	return getQuery[*repos.MappingSet](ctx, m.db, bqb.New("SELECT * FROM mapping_sets WHERE name = ?", name))
}

func (m mappingSetRepository) Update(ctx context.Context, name string, params repos.UpdateMappingSetParams) error {
	updateList, empty := genUpdateList(map[string]repos.OptionalGetter{
		"name":        params.Name,
		"description": params.Description,
	}, true)
	if empty {
		return nil
	}
	q := bqb.New("UPDATE mapping_sets SET ? WHERE name = ?", updateList, name)
	return executeQueryExpectAffectedRows(ctx, m.db, q)
}

func (m mappingSetRepository) Delete(ctx context.Context, name string) error {
	return executeQueryExpectAffectedRows(ctx, m.db, bqb.New("DELETE FROM mapping_sets WHERE name = ?", name))
}

func (m mappingSetRepository) FindRules(ctx context.Context, setID string) ([]*repos.MappingRule, error) {
	q := bqb.New("SELECT * FROM mapping_rules WHERE set_id = ? ORDER BY char COLLATE \"C\"", setID)
	return selectQuery[*repos.MappingRule](ctx, m.db, q)
}

func (m mappingSetRepository) SetRule(ctx context.Context, setID string, params repos.SetMappingRuleParams) error {
	if !validChar(params.Char) {
		return repos.NewError("set rule", repos.ErrInvalidParams, nil)
	}
	return m.tx(ctx, func(m mappingSetRepository) error {
		q := bqb.New(`INSERT INTO mapping_rules (set_id,char,base,upper_override,lower_override,created)
		VALUES (?,?,?,?,?,NOW())
		ON CONFLICT (set_id,char) DO UPDATE SET base=EXCLUDED.base,upper_override=EXCLUDED.upper_override,lower_override=EXCLUDED.lower_override`,
			setID, string(params.Char), params.Base, params.UpperOverride, params.LowerOverride)
		err := executeQuery(ctx, m.db, q)
		if err != nil {
			return err
		}
		return m.touch(ctx, setID)
	})
}

func (m mappingSetRepository) DeleteRule(ctx context.Context, setID string, char rune) error {
	if !validChar(char) {
		return repos.NewError("delete rule", repos.ErrInvalidParams, nil)
	}
	return m.tx(ctx, func(m mappingSetRepository) error {
		q := bqb.New("DELETE FROM mapping_rules WHERE set_id = ? AND char = ?", setID, string(char))
		err := executeQueryExpectAffectedRows(ctx, m.db, q)
		if err != nil {
			return err
		}
		return m.touch(ctx, setID)
	})
}

func (m mappingSetRepository) touch(ctx context.Context, setID string) error {
	return executeQueryExpectAffectedRows(ctx, m.db, bqb.New("UPDATE mapping_sets SET updated=NOW() WHERE id = ?", setID))
}

func validChar(r rune) bool {
	return r != utf8.RuneError && utf8.ValidRune(r)
}

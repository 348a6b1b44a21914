package mockdb

import (
	"context"

	"github.com/juho05/diacritics/repos"
)

type MappingSetRepository struct {
	CreateMock     func(ctx context.Context, params repos.CreateMappingSetParams) (*repos.MappingSet, error)
	FindAllMock    func(ctx context.Context) ([]*repos.MappingSet, error)
	FindByNameMock func(ctx context.Context, name string) (*repos.MappingSet, error)
	UpdateMock     func(ctx context.Context, name string, params repos.UpdateMappingSetParams) error
	DeleteMock     func(ctx context.Context, name string) error
	FindRulesMock  func(ctx context.Context, setID string) ([]*repos.MappingRule, error)
	SetRuleMock    func(ctx context.Context, setID string, params repos.SetMappingRuleParams) error
	DeleteRuleMock func(ctx context.Context, setID string, char rune) error
}

func (m MappingSetRepository) Create(ctx context.Context, params repos.CreateMappingSetParams) (*repos.MappingSet, error) {
	if m.CreateMock != nil {
		return m.CreateMock(ctx, params)
	}
	panic("not implemented")
}

func (m MappingSetRepository) FindAll(ctx context.Context) ([]*repos.MappingSet, error) {
	if m.FindAllMock != nil {
		return m.FindAllMock(ctx)
	}
	panic("not implemented")
}

func (m MappingSetRepository) FindByName(ctx context.Context, name string) (*repos.MappingSet, error) {
	if m.FindByNameMock != nil {
		return m.FindByNameMock(ctx, name)
	}
	panic("not implemented")
}

func (m MappingSetRepository) Update(ctx context.Context, name string, params repos.UpdateMappingSetParams) error {
	if m.UpdateMock != nil {
		return m.UpdateMock(ctx, name, params)
	}
	panic("not implemented")
}

func (m MappingSetRepository) Delete(ctx context.Context, name string) error {
	if m.DeleteMock != nil {
		return m.DeleteMock(ctx, name)
	}
	panic("not implemented")
}

func (m MappingSetRepository) FindRules(ctx context.Context, setID string) ([]*repos.MappingRule, error) {
	if m.FindRulesMock != nil {
		return m.FindRulesMock(ctx, setID)
	}
	panic("not implemented")
}

func (m MappingSetRepository) SetRule(ctx context.Context, setID string, params repos.SetMappingRuleParams) error {
	if m.SetRuleMock != nil {
		return m.SetRuleMock(ctx, setID, params)
	}
	panic("not implemented")
}

func (m MappingSetRepository) DeleteRule(ctx context.Context, setID string, char rune) error {
	if m.DeleteRuleMock != nil {
		return m.DeleteRuleMock(ctx, setID, char)
	}
	panic("not implemented")
}

package mockdb

import (
	"context"

	"github.com/juho05/diacritics/repos"
)

type DB struct {
	MappingSetRepository MappingSetRepository

	TransactionMock func(ctx context.Context, fn func(tx repos.Tx) error) error
	CloseMock       func() error
}

func (d *DB) MappingSet() repos.MappingSetRepository {
	return d.MappingSetRepository
}

func (d *DB) Transaction(ctx context.Context, fn func(tx repos.Tx) error) error {
	if d.TransactionMock != nil {
		return d.TransactionMock(ctx, fn)
	}
	return fn(d)
}

func (d *DB) Close() error {
	if d.CloseMock != nil {
		return d.CloseMock()
	}
	return nil
}

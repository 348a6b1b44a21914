package repos

import "context"

type Tx interface {
	MappingSet() MappingSetRepository
}

type DB interface {
	Tx
	Transaction(ctx context.Context, fn func(tx Tx) error) error

	Close() error
}

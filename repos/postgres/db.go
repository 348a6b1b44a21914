package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/juho05/diacritics"
	"github.com/juho05/diacritics/config"
	"github.com/juho05/diacritics/repos"
	"github.com/juho05/log"
	migrate "github.com/rubenv/sql-migrate"
)

type executer interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

type DB struct {
	db     *sqlx.DB
	tx     *sqlx.Tx
	config config.Config
}

func NewDB(dsn string, conf config.Config) (*DB, error) {
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: postgres: %w", err)
	}
	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("open db: postgres: %w", err)
	}

	if conf.AutoMigrate {
		err = autoMigrate(db.DB)
		if err != nil {
			return nil, fmt.Errorf("open db: postgres: %w", err)
		}
	}

	return &DB{
		db:     db,
		config: conf,
	}, nil
}

func autoMigrate(db *sql.DB) error {
	migrations := &migrate.HttpFileSystemMigrationSource{
		FileSystem: http.FS(diacritics.MigrationsFS),
	}
	log.Trace("Migrating database...")
	n, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Tracef("Applied %d migrations!", n)
	return nil
}

func (d *DB) MappingSet() repos.MappingSetRepository {
	exec := executer(d.db)
	if d.tx != nil {
		exec = d.tx
	}
	return mappingSetRepository{
		db: exec,
		tx: newTransactionFn(d, func(tx executer) mappingSetRepository {
			return mappingSetRepository{
				db: tx,
			}
		}),
	}
}

func (d *DB) Transaction(ctx context.Context, fn func(tx repos.Tx) error) error {
	if d.db == nil {
		return repos.NewError("create transaction", repos.ErrNestedTransaction, nil)
	}
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapErr("begin transaction", err)
	}
	defer rollback(tx)
	err = fn(&DB{
		tx:     tx,
		config: d.config,
	})
	if err != nil {
		return err
	}
	return wrapErr("commit transaction", tx.Commit())
}

func newTransactionFn[R any](db *DB, newRepo func(tx executer) R) func(ctx context.Context, fn func(R) error) error {
	return func(ctx context.Context, fn func(R) error) error {
		if db.tx != nil {
			return fn(newRepo(db.tx))
		}
		tx, err := db.db.BeginTxx(ctx, nil)
		if err != nil {
			return wrapErr("", fmt.Errorf("begin transaction: %w", err))
		}
		defer rollback(tx)
		err = fn(newRepo(tx))
		if err != nil {
			return wrapErr("", err)
		}
		err = tx.Commit()
		if err != nil {
			return wrapErr("", fmt.Errorf("commit transaction: %w", err))
		}
		return nil
	}
}

func rollback(tx *sqlx.Tx) {
	err := tx.Rollback()
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		log.Errorf("rollback transaction: %s", err)
	}
}

func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

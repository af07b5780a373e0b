package client

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/investportal/internal/client/migrations"
	"github.com/dmitrijs2005/investportal/internal/client/repositories/kv"
	"github.com/dmitrijs2005/investportal/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Repositories bundles the storage handles the services are built on.
type Repositories struct {
	DB *sql.DB
	KV kv.TxStore
}

// Close releases the underlying database.
func (r *Repositories) Close() error {
	return r.DB.Close()
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// InitDatabase opens (creating if needed) the SQLite database at path and
// brings its schema up to date. The pool is limited to a single connection:
// the store has one writer, and ":memory:" databases are per-connection.
func InitDatabase(ctx context.Context, path string) (*sql.DB, error) {
	if !isInMemory(path) {
		if _, err := filex.EnsureParentDir(path); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// InitRepositories opens the database at path and wraps it in the
// repositories the services need.
func InitRepositories(ctx context.Context, path string) (*Repositories, error) {
	db, err := InitDatabase(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLocalDataNotAvailable, err)
	}
	return &Repositories{DB: db, KV: kv.NewSQLiteStore(db)}, nil
}

func isInMemory(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

package repository

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationResult describes one applied or rolled back migration.
type MigrationResult struct {
	Version int64
	Source  string
}

// Migrate applies all pending schema migrations embedded in the binary.
// It is safe to call on every startup; applied migrations are skipped.
func (r *Repository) Migrate(ctx context.Context) ([]MigrationResult, error) {
	provider, closeDB, err := r.migrationProvider()
	if err != nil {
		return nil, err
	}
	defer closeDB()

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return toMigrationResults(results), nil
}

// Rollback reverts every applied migration. Intended for tests.
func (r *Repository) Rollback(ctx context.Context) ([]MigrationResult, error) {
	provider, closeDB, err := r.migrationProvider()
	if err != nil {
		return nil, err
	}
	defer closeDB()

	results, err := provider.DownTo(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("rollback migrations: %w", err)
	}
	return toMigrationResults(results), nil
}

func (r *Repository) migrationProvider() (*goose.Provider, func(), error) {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return nil, nil, fmt.Errorf("open migration source: %w", err)
	}

	db := stdlib.OpenDBFromPool(r.pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, sub)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("create migrator: %w", err)
	}

	return provider, func() { _ = db.Close() }, nil
}

func toMigrationResults(results []*goose.MigrationResult) []MigrationResult {
	out := make([]MigrationResult, 0, len(results))
	for _, res := range results {
		if res == nil || res.Source == nil {
			continue
		}
		out = append(out, MigrationResult{Version: res.Source.Version, Source: res.Source.Path})
	}
	return out
}

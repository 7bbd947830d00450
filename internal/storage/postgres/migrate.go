package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const createMigrationsTableSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  migration_id TEXT PRIMARY KEY,
  applied_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)
`

// Migrate applies every pending .sql file from dir, in lexicographic order,
// one transaction per file. A file's name is its identity: once recorded in
// schema_migrations it is never executed again, so files must not be renamed
// after they ship.
func Migrate(ctx context.Context, pool *pgxpool.Pool, dir string) error {
	if _, err := pool.Exec(ctx, createMigrationsTableSQL); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	files, err := sqlFiles(dir)
	if err != nil {
		return err
	}

	applied, err := appliedSet(ctx, pool)
	if err != nil {
		return err
	}

	for _, f := range files {
		id := filepath.Base(f)
		if applied[id] {
			continue
		}
		raw, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		if strings.TrimSpace(string(raw)) == "" {
			log.Warn().Str("migration", id).Msg("skipping empty migration file")
			continue
		}
		if err := applyOne(ctx, pool, id, string(raw)); err != nil {
			return fmt.Errorf("apply %s: %w", id, err)
		}
		log.Info().Str("migration", id).Msg("migration applied")
	}
	return nil
}

// sqlFiles returns the .sql files of dir sorted by name. Subdirectories and
// other extensions are ignored.
func sqlFiles(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, e := range ents {
		if e.IsDir() || filepath.Ext(e.Name()) != ".sql" {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func appliedSet(ctx context.Context, pool *pgxpool.Pool) (map[string]bool, error) {
	rows, err := pool.Query(ctx, `SELECT migration_id FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	defer rows.Close()

	applied := map[string]bool{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		applied[id] = true
	}
	return applied, rows.Err()
}

func applyOne(ctx context.Context, pool *pgxpool.Pool, id, body string) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, body); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO schema_migrations (migration_id) VALUES ($1) ON CONFLICT DO NOTHING`, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

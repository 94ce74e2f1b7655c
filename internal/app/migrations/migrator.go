// Package migrations applies the embedded SQL schema files in version order,
// recording each one in schema_migrations.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/db"
)

//go:embed sql/*.sql
var embedded embed.FS

const trackingTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version    VARCHAR(255) PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Migrator runs schema migrations against a PostgresDB.
type Migrator struct {
	db     *db.PostgresDB
	source fs.FS
	logger zerolog.Logger
}

// NewMigrator returns a migrator over the embedded sql/ directory.
func NewMigrator(database *db.PostgresDB, logger zerolog.Logger) *Migrator {
	return &Migrator{db: database, source: embedded, logger: logger}
}

// Version is the file name up to the first underscore ("001_init.sql" is "001").
func Version(filename string) string {
	base := path.Base(filename)
	if i := strings.IndexByte(base, '_'); i >= 0 {
		return base[:i]
	}
	return strings.TrimSuffix(base, ".sql")
}

// Files lists the .sql files directly under dir, sorted by name.
func Files(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".sql" {
			continue
		}
		files = append(files, path.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Migrate applies every pending migration. Each file runs in its own
// transaction together with its schema_migrations row.
func (m *Migrator) Migrate(ctx context.Context) error {
	if _, err := m.db.Pool.Exec(ctx, trackingTable); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return err
	}

	files, err := Files(m.source, "sql")
	if err != nil {
		return err
	}

	pending := 0
	for _, file := range files {
		version := Version(file)
		if applied[version] {
			continue
		}
		if err := m.apply(ctx, file, version); err != nil {
			return err
		}
		pending++
	}

	m.logger.Info().Int("applied", pending).Int("total", len(files)).Msg("Schema up to date")
	return nil
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[string]bool, error) {
	rows, err := m.db.Pool.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("read applied migrations: %w", err)
	}
	versions, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("read applied migrations: %w", err)
	}

	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}
	return applied, nil
}

func (m *Migrator) apply(ctx context.Context, file, version string) error {
	body, err := fs.ReadFile(m.source, file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}

	err = m.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("migration %s: %w", path.Base(file), err)
		}
		_, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version)
		return err
	})
	if err != nil {
		return err
	}

	m.logger.Info().Str("file", path.Base(file)).Msg("Migration applied")
	return nil
}

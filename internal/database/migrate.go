package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"time"

	"sat-prep/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.up.sql
var migrationFiles embed.FS

const migrationsTable = "SCHEMA_MIGRATIONS"

// Migration is one embedded schema change
type Migration struct {
	Version    string
	Statements []string
}

// LoadMigrations returns the embedded migrations ordered by version
func LoadMigrations() ([]Migration, error) {
	return loadMigrations(migrationFiles, "migrations")
}

func loadMigrations(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	var migrations []Migration
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		content, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		migrations = append(migrations, Migration{
			Version:    strings.TrimSuffix(name, ".up.sql"),
			Statements: SplitStatements(string(content)),
		})
	}
	slices.SortFunc(migrations, func(a, b Migration) int { return strings.Compare(a.Version, b.Version) })
	return migrations, nil
}

// SplitStatements breaks a script into single statements.
// Oracle drivers reject multiple statements per Exec and a trailing semicolon.
func SplitStatements(script string) []string {
	var (
		statements []string
		current    strings.Builder
	)
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSuffix(strings.TrimSpace(current.String()), ";")
			statements = append(statements, stmt)
			current.Reset()
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		statements = append(statements, rest)
	}
	return statements
}

// RunMigrations applies every embedded migration not yet recorded in SCHEMA_MIGRATIONS
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	migrations, err := LoadMigrations()
	if err != nil {
		return err
	}
	return applyMigrations(ctx, db, migrations)
}

func applyMigrations(ctx context.Context, db *sqlx.DB, migrations []Migration) error {
	log := logger.Get()

	if err := ensureMigrationsTable(ctx, db); err != nil {
		return err
	}

	var applied []string
	if err := db.SelectContext(ctx, &applied, `SELECT version FROM schema_migrations`); err != nil {
		return fmt.Errorf("could not read applied migrations: %w", err)
	}

	for _, m := range migrations {
		if slices.Contains(applied, m.Version) {
			log.Debug("Skipping applied migration", zap.String("version", m.Version))
			continue
		}
		// Oracle DDL auto-commits, so each statement lands on its own.
		for i, stmt := range m.Statements {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("could not execute migration %s (statement %d): %w", m.Version, i+1, err)
			}
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, applied_at) VALUES (:1, :2)`,
			m.Version, time.Now()); err != nil {
			return fmt.Errorf("could not record migration %s: %w", m.Version, err)
		}
		log.Info("Executed migration", zap.String("version", m.Version))
	}

	log.Info("Migrations completed successfully")
	return nil
}

func ensureMigrationsTable(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM user_tables WHERE table_name = :1`, migrationsTable); err != nil {
		return fmt.Errorf("could not check migrations table: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err := db.ExecContext(ctx, `CREATE TABLE schema_migrations (
    version    VARCHAR2(255) PRIMARY KEY,
    applied_at TIMESTAMP     NOT NULL
)`)
	if err != nil {
		return fmt.Errorf("could not create migrations table: %w", err)
	}
	return nil
}

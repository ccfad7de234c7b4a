package postgres

import (
	"embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const dialect = "postgres"

// MigrationStatus reports whether a migration file has been applied.
type MigrationStatus struct {
	ID        string
	Applied   bool
	AppliedAt *time.Time
}

func migrationSource() *migrate.EmbedFileSystemMigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       "migrations",
	}
}

// MigrateUp applies every pending migration and returns how many ran.
func MigrateUp(pool *pgxpool.Pool) (int, error) {
	// not closed: the connections belong to pool
	db := stdlib.OpenDBFromPool(pool)

	n, err := migrate.Exec(db, dialect, migrationSource(), migrate.Up)
	if err != nil {
		return n, fmt.Errorf("apply migrations: %w", err)
	}
	return n, nil
}

// MigrationStatuses lists every embedded migration with its applied state.
func MigrationStatuses(pool *pgxpool.Pool) ([]MigrationStatus, error) {
	db := stdlib.OpenDBFromPool(pool)

	known, err := migrationSource().FindMigrations()
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	records, err := migrate.GetMigrationRecords(db, dialect)
	if err != nil {
		return nil, fmt.Errorf("read migration records: %w", err)
	}
	applied := make(map[string]time.Time, len(records))
	for _, r := range records {
		applied[r.Id] = r.AppliedAt
	}

	statuses := make([]MigrationStatus, 0, len(known))
	for _, m := range known {
		s := MigrationStatus{ID: m.Id}
		if at, ok := applied[m.Id]; ok {
			s.Applied = true
			s.AppliedAt = &at
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}

package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"NUTRINO_BACK-END/internal/store"
)

func TestClassify(t *testing.T) {
	unique := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "health_profiles_user_id_key"}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "health_profiles_user_id_fkey"}
	plain := errors.New("connection reset")

	t.Run("no rows", func(t *testing.T) {
		assert.ErrorIs(t, classify(fmt.Errorf("scan: %w", pgx.ErrNoRows)), store.ErrNotFound)
	})

	t.Run("unique violation keeps driver error", func(t *testing.T) {
		err := classify(unique)
		assert.ErrorIs(t, err, store.ErrConflict)
		var pgErr *pgconn.PgError
		assert.True(t, errors.As(err, &pgErr))
		assert.Contains(t, err.Error(), "health_profiles_user_id_key")
	})

	t.Run("foreign key violation is not a conflict", func(t *testing.T) {
		err := classify(fk)
		assert.NotErrorIs(t, err, store.ErrConflict)
		assert.Equal(t, fk, err)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		assert.Equal(t, plain, classify(plain))
	})
}

func TestNonNil(t *testing.T) {
	assert.Equal(t, []string{}, nonNil(nil))
	assert.Equal(t, []string{"gluten"}, nonNil([]string{"gluten"}))
}

func TestMigrationSourceFindsEmbeddedFiles(t *testing.T) {
	migrations, err := migrationSource().FindMigrations()
	assert.NoError(t, err)
	if assert.Len(t, migrations, 2) {
		assert.Equal(t, "0001_init.sql", migrations[0].Id)
		assert.Equal(t, "0002_webhook_events.sql", migrations[1].Id)
	}
}

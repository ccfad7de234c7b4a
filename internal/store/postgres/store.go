// Package postgres implements store.Store on PostgreSQL through pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"NUTRINO_BACK-END/internal/models"
	"NUTRINO_BACK-END/internal/store"
)

const pgUniqueViolation = "23505"

const profileColumns = `
	id, user_id, age, gender, height, weight, activity_level,
	medical_conditions, allergies, digestive_issues,
	pregnancy_status, breastfeeding, recent_surgery, chronic_pain,
	created_at, updated_at`

// Store is a store.Store backed by a pgx connection pool.
type Store struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
}

var _ store.Store = (*Store)(nil)

// New wraps pool. A zero queryTimeout leaves request contexts untouched.
func New(pool *pgxpool.Pool, queryTimeout time.Duration) *Store {
	return &Store{pool: pool, queryTimeout: queryTimeout}
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) ProvisionUser(ctx context.Context, eventID, eventType string, u *models.User) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin provision tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if eventID != "" {
		ct, err := tx.Exec(ctx,
			`insert into webhook_events (id, type) values ($1, $2) on conflict (id) do nothing`,
			eventID, eventType)
		if err != nil {
			return fmt.Errorf("record webhook event: %w", classify(err))
		}
		if ct.RowsAffected() == 0 {
			return store.ErrEventProcessed
		}
	}

	err = tx.QueryRow(ctx, `
insert into users (clerk_id, email, name)
values ($1, $2, $3)
returning id, created_at, updated_at`,
		u.ClerkID, u.Email, u.Name,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", classify(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit provision tx: %w", classify(err))
	}
	return nil
}

func (s *Store) GetUserByClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var u models.User
	err := s.pool.QueryRow(ctx, `
select id, clerk_id, email, name, created_at, updated_at
from users
where clerk_id = $1`, clerkID,
	).Scan(&u.ID, &u.ClerkID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("select user: %w", classify(err))
	}

	profile, err := s.getHealthProfile(ctx, u.ID)
	switch {
	case err == nil:
		u.HealthProfile = profile
	case !errors.Is(err, store.ErrNotFound):
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var u models.User
	err := s.pool.QueryRow(ctx, `
select id, clerk_id, email, name, created_at, updated_at
from users
where id = $1`, id,
	).Scan(&u.ID, &u.ClerkID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("select user: %w", classify(err))
	}
	return &u, nil
}

func (s *Store) GetHealthProfile(ctx context.Context, userID int64) (*models.HealthProfile, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.getHealthProfile(ctx, userID)
}

func (s *Store) getHealthProfile(ctx context.Context, userID int64) (*models.HealthProfile, error) {
	row := s.pool.QueryRow(ctx, `select `+profileColumns+` from health_profiles where user_id = $1`, userID)
	p, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("select health profile: %w", classify(err))
	}
	return p, nil
}

func (s *Store) CreateHealthProfile(ctx context.Context, p *models.HealthProfile) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.pool.QueryRow(ctx, `
insert into health_profiles (
	user_id, age, gender, height, weight, activity_level,
	medical_conditions, allergies, digestive_issues,
	pregnancy_status, breastfeeding, recent_surgery, chronic_pain
) values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
returning id, created_at, updated_at`,
		p.UserID, p.Age, p.Gender, p.Height, p.Weight, p.ActivityLevel,
		nonNil(p.MedicalConditions), nonNil(p.Allergies), nonNil(p.DigestiveIssues),
		p.PregnancyStatus, p.Breastfeeding, p.RecentSurgery, p.ChronicPain,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert health profile: %w", classify(err))
	}
	return nil
}

func (s *Store) UpdateHealthProfile(ctx context.Context, p *models.HealthProfile) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.pool.QueryRow(ctx, `
update health_profiles set
	age = $2, gender = $3, height = $4, weight = $5, activity_level = $6,
	medical_conditions = $7, allergies = $8, digestive_issues = $9,
	pregnancy_status = $10, breastfeeding = $11, recent_surgery = $12, chronic_pain = $13,
	updated_at = now()
where user_id = $1
returning id, created_at, updated_at`,
		p.UserID, p.Age, p.Gender, p.Height, p.Weight, p.ActivityLevel,
		nonNil(p.MedicalConditions), nonNil(p.Allergies), nonNil(p.DigestiveIssues),
		p.PregnancyStatus, p.Breastfeeding, p.RecentSurgery, p.ChronicPain,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update health profile: %w", classify(err))
	}
	return nil
}

func (s *Store) DeleteHealthProfile(ctx context.Context, userID int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ct, err := s.pool.Exec(ctx, `delete from health_profiles where user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete health profile: %w", classify(err))
	}
	if ct.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanProfile(row pgx.Row) (*models.HealthProfile, error) {
	var p models.HealthProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.Age, &p.Gender, &p.Height, &p.Weight, &p.ActivityLevel,
		&p.MedicalConditions, &p.Allergies, &p.DigestiveIssues,
		&p.PregnancyStatus, &p.Breastfeeding, &p.RecentSurgery, &p.ChronicPain,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.MedicalConditions = nonNil(p.MedicalConditions)
	p.Allergies = nonNil(p.Allergies)
	p.DigestiveIssues = nonNil(p.DigestiveIssues)
	return &p, nil
}

// classify maps driver errors onto the store sentinels, keeping the
// original error in the chain for diagnostics.
func classify(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w on %s: %w", store.ErrConflict, pgErr.ConstraintName, err)
	}
	return err
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

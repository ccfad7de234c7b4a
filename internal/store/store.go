// Package store declares the persistence contracts shared by the Postgres
// and SQLite backends.
package store

import (
	"context"
	"errors"

	"NUTRINO_BACK-END/internal/models"
)

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write violates a unique constraint.
	ErrConflict = errors.New("unique constraint violation")
	// ErrEventProcessed is returned when a webhook message id was already recorded.
	ErrEventProcessed = errors.New("webhook event already processed")
)

// UserStore persists provisioned users.
type UserStore interface {
	// ProvisionUser records the webhook event and inserts u in one transaction.
	// An empty eventID skips the event record. On success u carries its
	// generated id and timestamps.
	ProvisionUser(ctx context.Context, eventID, eventType string, u *models.User) error
	// GetUserByClerkID returns the user with its health profile, if any.
	GetUserByClerkID(ctx context.Context, clerkID string) (*models.User, error)
	// GetUserByID returns the user without its health profile.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// HealthProfileStore persists health profiles keyed by user id.
type HealthProfileStore interface {
	GetHealthProfile(ctx context.Context, userID int64) (*models.HealthProfile, error)
	// CreateHealthProfile returns ErrConflict when a profile already exists for the user.
	CreateHealthProfile(ctx context.Context, p *models.HealthProfile) error
	// UpdateHealthProfile overwrites every attribute of the user's profile.
	UpdateHealthProfile(ctx context.Context, p *models.HealthProfile) error
	DeleteHealthProfile(ctx context.Context, userID int64) error
}

// Store is the full persistence handle injected at startup.
type Store interface {
	UserStore
	HealthProfileStore
	Ping(ctx context.Context) error
	Close() error
}

// Package sqlite implements store.Store on an embedded SQLite database
// through GORM. It backs local development and the test suites.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"NUTRINO_BACK-END/internal/models"
	"NUTRINO_BACK-END/internal/store"
)

// Store is a store.Store backed by GORM on SQLite.
type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// MemoryDSN returns a DSN for a named, private in-memory database.
func MemoryDSN(name string) string {
	name = strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(name)
	return fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
}

// FileDSN returns a DSN for an on-disk database at path with foreign keys enforced.
func FileDSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
}

// Open connects to dsn and migrates the schema.
func Open(dsn string, log zerolog.Logger) (*Store, error) {
	gormLogger := logger.New(
		&log,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB from gorm: %w", err)
	}
	// SQLite serialises writers; one connection keeps "database is locked" out of the picture.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.HealthProfile{}, &models.WebhookEvent{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate sqlite schema: %w", err)
	}

	return &Store{db: db}, nil
}

// OpenFile creates the parent directory of path if needed and opens it.
func OpenFile(path string, log zerolog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", dir, err)
		}
	}
	return Open(FileDSN(path), log)
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) ProvisionUser(ctx context.Context, eventID, eventType string, u *models.User) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if eventID != "" {
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.WebhookEvent{ID: eventID, Type: eventType})
			if res.Error != nil {
				return fmt.Errorf("record webhook event: %w", classify(res.Error))
			}
			if res.RowsAffected == 0 {
				return store.ErrEventProcessed
			}
		}
		if err := tx.Omit(clause.Associations).Create(u).Error; err != nil {
			return fmt.Errorf("insert user: %w", classify(err))
		}
		return nil
	})
}

func (s *Store) GetUserByClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).
		Preload("HealthProfile").
		Where("clerk_id = ?", clerkID).
		First(&u).Error
	if err != nil {
		return nil, fmt.Errorf("select user: %w", classify(err))
	}
	if u.HealthProfile != nil {
		normalise(u.HealthProfile)
	}
	return &u, nil
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, fmt.Errorf("select user: %w", classify(err))
	}
	return &u, nil
}

func (s *Store) GetHealthProfile(ctx context.Context, userID int64) (*models.HealthProfile, error) {
	var p models.HealthProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, fmt.Errorf("select health profile: %w", classify(err))
	}
	normalise(&p)
	return &p, nil
}

func (s *Store) CreateHealthProfile(ctx context.Context, p *models.HealthProfile) error {
	normalise(p)
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("insert health profile: %w", classify(err))
	}
	return nil
}

func (s *Store) UpdateHealthProfile(ctx context.Context, p *models.HealthProfile) error {
	normalise(p)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.HealthProfile{}).
			Where("user_id = ?", p.UserID).
			Select("*").
			Omit("id", "user_id", "created_at").
			Updates(p)
		if res.Error != nil {
			return fmt.Errorf("update health profile: %w", classify(res.Error))
		}
		if res.RowsAffected == 0 {
			return store.ErrNotFound
		}

		var stored models.HealthProfile
		if err := tx.Where("user_id = ?", p.UserID).First(&stored).Error; err != nil {
			return fmt.Errorf("reload health profile: %w", classify(err))
		}
		p.ID = stored.ID
		p.CreatedAt = stored.CreatedAt
		p.UpdatedAt = stored.UpdatedAt
		return nil
	})
}

func (s *Store) DeleteHealthProfile(ctx context.Context, userID int64) error {
	res := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.HealthProfile{})
	if res.Error != nil {
		return fmt.Errorf("delete health profile: %w", classify(res.Error))
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", store.ErrConflict, err)
	default:
		return err
	}
}

func normalise(p *models.HealthProfile) {
	if p.MedicalConditions == nil {
		p.MedicalConditions = []string{}
	}
	if p.Allergies == nil {
		p.Allergies = []string{}
	}
	if p.DigestiveIssues == nil {
		p.DigestiveIssues = []string{}
	}
}

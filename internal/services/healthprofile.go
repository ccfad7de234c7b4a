package services

import (
	"context"
	"errors"

	"NUTRINO_BACK-END/internal/apperr"
	"NUTRINO_BACK-END/internal/dto"
	"NUTRINO_BACK-END/internal/models"
	"NUTRINO_BACK-END/internal/store"
)

// HealthProfileService creates, merges, reads and deletes health profiles.
type HealthProfileService struct {
	profiles store.HealthProfileStore
}

func NewHealthProfileService(profiles store.HealthProfileStore) *HealthProfileService {
	return &HealthProfileService{profiles: profiles}
}

// Upsert creates the user's profile or merges req over the stored one.
// The whole request is validated before the store is touched.
func (s *HealthProfileService) Upsert(ctx context.Context, req *dto.HealthStatusRequest) (profile *models.HealthProfile, created bool, err error) {
	userID, err := ParseUserIDField(req.UserID)
	if err != nil {
		return nil, false, err
	}
	patch, err := parsePatch(req)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.profiles.GetHealthProfile(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, false, apperr.Persistence("Failed to process health status", err)
	}

	if existing == nil {
		profile = models.NewHealthProfile(userID)
		patch.apply(profile)
		if err := s.profiles.CreateHealthProfile(ctx, profile); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return nil, false, apperr.Conflict("Health profile was created concurrently for this user, retry the request", err)
			}
			return nil, false, apperr.Persistence("Failed to process health status", err)
		}
		return profile, true, nil
	}

	profile = existing.Clone()
	patch.apply(profile)
	if err := s.profiles.UpdateHealthProfile(ctx, profile); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, false, apperr.NotFound("Health profile was deleted while updating")
		}
		return nil, false, apperr.Persistence("Failed to process health status", err)
	}
	return profile, false, nil
}

// Get returns the stored profile for userID.
func (s *HealthProfileService) Get(ctx context.Context, userID int64) (*models.HealthProfile, error) {
	p, err := s.profiles.GetHealthProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("Health profile not found")
		}
		return nil, apperr.Persistence("Failed to fetch health profile", err)
	}
	return p, nil
}

// Delete removes the profile for userID, failing when there is none.
func (s *HealthProfileService) Delete(ctx context.Context, userID int64) error {
	if err := s.profiles.DeleteHealthProfile(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("Health profile not found")
		}
		return apperr.Persistence("Failed to delete health profile", err)
	}
	return nil
}

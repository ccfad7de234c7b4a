package services

import (
	"context"
	"errors"
	"strings"

	"NUTRINO_BACK-END/internal/apperr"
	"NUTRINO_BACK-END/internal/models"
	"NUTRINO_BACK-END/internal/store"
)

// UserService serves read access to provisioned users.
type UserService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

// Details returns the user for a Clerk id together with its health profile.
func (s *UserService) Details(ctx context.Context, clerkID string) (*models.User, error) {
	clerkID = strings.TrimSpace(clerkID)
	if clerkID == "" {
		return nil, apperr.InvalidInput("clerkId is required")
	}
	u, err := s.users.GetUserByClerkID(ctx, clerkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Persistence("Failed to fetch user details", err)
	}
	return u, nil
}

// AuthorizeUserID checks that the user with userID belongs to subject, the
// Clerk id carried by the caller's token.
func (s *UserService) AuthorizeUserID(ctx context.Context, subject string, userID int64) error {
	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("User not found")
		}
		return apperr.Persistence("Failed to fetch user", err)
	}
	return AuthorizeClerkID(subject, u.ClerkID)
}

// AuthorizeClerkID checks that clerkID is the caller's own account.
func AuthorizeClerkID(subject, clerkID string) error {
	if subject != strings.TrimSpace(clerkID) {
		return apperr.Forbidden("Access to another user's data is not allowed")
	}
	return nil
}

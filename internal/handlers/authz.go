package handlers

import (
	"net/http"

	"NUTRINO_BACK-END/internal/middleware"
	"NUTRINO_BACK-END/internal/services"
)

// authorizeUserID limits a token holder to its own user's records.
// Requests without a subject pass: bearer auth is disabled for them.
func authorizeUserID(r *http.Request, users *services.UserService, userID int64) error {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		return nil
	}
	return users.AuthorizeUserID(r.Context(), subject, userID)
}

func authorizeClerkID(r *http.Request, clerkID string) error {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		return nil
	}
	return services.AuthorizeClerkID(subject, clerkID)
}

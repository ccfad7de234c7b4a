package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	svix "github.com/svix/svix-webhooks/go"

	"NUTRINO_BACK-END/internal/apperr"
	"NUTRINO_BACK-END/internal/dto"
	"NUTRINO_BACK-END/internal/models"
	"NUTRINO_BACK-END/internal/store"
)

// Svix signing headers sent with every Clerk delivery.
const (
	HeaderSvixID        = "svix-id"
	HeaderSvixTimestamp = "svix-timestamp"
	HeaderSvixSignature = "svix-signature"
)

// ProvisionOutcome describes what a webhook delivery did.
type ProvisionOutcome int

const (
	// OutcomeIgnored means the event type has no handler and was acknowledged.
	OutcomeIgnored ProvisionOutcome = iota
	// OutcomeCreated means a user row was inserted.
	OutcomeCreated
	// OutcomeDuplicate means the message id was already processed.
	OutcomeDuplicate
)

// ProvisionResult is returned by ProvisioningService.Handle.
type ProvisionResult struct {
	Outcome   ProvisionOutcome
	EventType string
	User      *models.User
}

// Verifier authenticates a raw webhook payload against its headers.
type Verifier interface {
	Verify(payload []byte, headers http.Header) error
}

// ProvisioningService verifies Clerk webhooks and provisions local users.
type ProvisioningService struct {
	users     store.UserStore
	verifier  Verifier
	configErr string
}

// NewProvisioningService builds the service from the Clerk signing secret.
// A missing or malformed secret does not fail construction; every delivery
// is then answered with a configuration error.
func NewProvisioningService(users store.UserStore, signingSecret string, log zerolog.Logger) *ProvisioningService {
	s := &ProvisioningService{users: users}
	if signingSecret == "" {
		s.configErr = "Webhook secret not configured"
		return s
	}
	wh, err := svix.NewWebhook(signingSecret)
	if err != nil {
		log.Error().Err(err).Str("kind", apperr.KindConfiguration.String()).Msg("invalid CLERK_WEBHOOK_SECRET")
		s.configErr = "Webhook secret is invalid"
		return s
	}
	s.verifier = wh
	return s
}

// NewProvisioningServiceWithVerifier builds the service around a custom verifier.
func NewProvisioningServiceWithVerifier(users store.UserStore, verifier Verifier) *ProvisioningService {
	return &ProvisioningService{users: users, verifier: verifier}
}

// Handle authenticates payload and applies the event it carries.
func (s *ProvisioningService) Handle(ctx context.Context, payload []byte, headers http.Header) (*ProvisionResult, error) {
	if s.verifier == nil {
		return nil, apperr.Configuration(s.configErr)
	}

	msgID := headers.Get(HeaderSvixID)
	if msgID == "" || headers.Get(HeaderSvixTimestamp) == "" || headers.Get(HeaderSvixSignature) == "" {
		return nil, apperr.InvalidInput("Missing required Svix headers")
	}

	if err := s.verifier.Verify(payload, headers); err != nil {
		return nil, apperr.Unauthenticated("Invalid webhook signature", err)
	}

	var event dto.ClerkEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, apperr.InvalidInput("Webhook payload is not valid JSON")
	}

	zerolog.Ctx(ctx).Info().Str("event_type", event.Type).Str("svix_id", msgID).Msg("webhook verified")

	switch event.Type {
	case dto.EventUserCreated:
		return s.userCreated(ctx, msgID, event)
	default:
		return &ProvisionResult{Outcome: OutcomeIgnored, EventType: event.Type}, nil
	}
}

func (s *ProvisioningService) userCreated(ctx context.Context, msgID string, event dto.ClerkEvent) (*ProvisionResult, error) {
	var data dto.ClerkUser
	if len(event.Data) == 0 || json.Unmarshal(event.Data, &data) != nil {
		return nil, apperr.InvalidInput("Webhook payload has no user data")
	}
	if strings.TrimSpace(data.ID) == "" {
		return nil, apperr.InvalidInput("Webhook payload has no user id")
	}

	email := PrimaryEmail(data)
	if email == "" {
		return nil, apperr.InvalidInput("No email found for user")
	}

	user := &models.User{
		ClerkID: data.ID,
		Email:   email,
		Name:    DisplayName(data.FirstName, data.LastName),
	}

	err := s.users.ProvisionUser(ctx, msgID, event.Type, user)
	switch {
	case err == nil:
		return &ProvisionResult{Outcome: OutcomeCreated, EventType: event.Type, User: user}, nil
	case errors.Is(err, store.ErrEventProcessed):
		return &ProvisionResult{Outcome: OutcomeDuplicate, EventType: event.Type}, nil
	case errors.Is(err, store.ErrConflict):
		return nil, apperr.Conflict("User already exists", err)
	default:
		return nil, apperr.Persistence("Database error creating user", err)
	}
}

// PrimaryEmail returns the address flagged as primary, falling back to the
// first non-empty one.
func PrimaryEmail(u dto.ClerkUser) string {
	if u.PrimaryEmailAddressID != nil {
		for _, e := range u.EmailAddresses {
			if e.ID == *u.PrimaryEmailAddressID && strings.TrimSpace(e.EmailAddress) != "" {
				return strings.TrimSpace(e.EmailAddress)
			}
		}
	}
	for _, e := range u.EmailAddresses {
		if addr := strings.TrimSpace(e.EmailAddress); addr != "" {
			return addr
		}
	}
	return ""
}

// DisplayName joins first and last name, or returns models.AnonymousName when both are blank.
func DisplayName(first, last *string) string {
	var parts []string
	for _, p := range []*string{first, last} {
		if p != nil {
			if v := strings.TrimSpace(*p); v != "" {
				parts = append(parts, v)
			}
		}
	}
	if len(parts) == 0 {
		return models.AnonymousName
	}
	return strings.Join(parts, " ")
}

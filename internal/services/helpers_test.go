package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"NUTRINO_BACK-END/internal/dto"
	"NUTRINO_BACK-END/internal/models"
	"NUTRINO_BACK-END/internal/store"
	"NUTRINO_BACK-END/internal/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(sqlite.MemoryDSN(t.Name()), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s store.UserStore, clerkID, email string) *models.User {
	t.Helper()
	u := &models.User{ClerkID: clerkID, Email: email, Name: "Seed User"}
	require.NoError(t, s.ProvisionUser(context.Background(), "", dto.EventUserCreated, u))
	return u
}

func request(t *testing.T, body string) *dto.HealthStatusRequest {
	t.Helper()
	var req dto.HealthStatusRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

// fakeProfiles lets tests script store behaviour that is hard to provoke
// against a real database.
type fakeProfiles struct {
	get    func(ctx context.Context, userID int64) (*models.HealthProfile, error)
	create func(ctx context.Context, p *models.HealthProfile) error
	update func(ctx context.Context, p *models.HealthProfile) error
	delete func(ctx context.Context, userID int64) error
}

func (f *fakeProfiles) GetHealthProfile(ctx context.Context, userID int64) (*models.HealthProfile, error) {
	return f.get(ctx, userID)
}

func (f *fakeProfiles) CreateHealthProfile(ctx context.Context, p *models.HealthProfile) error {
	return f.create(ctx, p)
}

func (f *fakeProfiles) UpdateHealthProfile(ctx context.Context, p *models.HealthProfile) error {
	return f.update(ctx, p)
}

func (f *fakeProfiles) DeleteHealthProfile(ctx context.Context, userID int64) error {
	return f.delete(ctx, userID)
}

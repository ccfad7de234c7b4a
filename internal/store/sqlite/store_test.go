package sqlite

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NUTRINO_BACK-END/internal/models"
	"NUTRINO_BACK-END/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(MemoryDSN(t.Name()), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func provision(t *testing.T, s *Store, clerkID, email string) *models.User {
	t.Helper()
	u := &models.User{ClerkID: clerkID, Email: email, Name: "Test User"}
	require.NoError(t, s.ProvisionUser(context.Background(), "", "user.created", u))
	require.NotZero(t, u.ID)
	return u
}

func ptr[T any](v T) *T { return &v }

func TestProvisionUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := &models.User{ClerkID: "user_1", Email: "a@example.com", Name: "Ada Lovelace"}
	require.NoError(t, s.ProvisionUser(ctx, "msg_1", "user.created", u))
	assert.NotZero(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	t.Run("lookup by id", func(t *testing.T) {
		got, err := s.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "user_1", got.ClerkID)
		assert.Nil(t, got.HealthProfile)

		_, err = s.GetUserByID(ctx, u.ID+100)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("redelivered event is rejected without side effects", func(t *testing.T) {
		again := &models.User{ClerkID: "user_other", Email: "other@example.com"}
		err := s.ProvisionUser(ctx, "msg_1", "user.created", again)
		assert.ErrorIs(t, err, store.ErrEventProcessed)

		_, err = s.GetUserByClerkID(ctx, "user_other")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate clerk id is a conflict and rolls back the event", func(t *testing.T) {
		dup := &models.User{ClerkID: "user_1", Email: "b@example.com"}
		err := s.ProvisionUser(ctx, "msg_2", "user.created", dup)
		assert.ErrorIs(t, err, store.ErrConflict)

		// msg_2 was rolled back, so a corrected redelivery can still succeed
		fixed := &models.User{ClerkID: "user_2", Email: "b@example.com"}
		assert.NoError(t, s.ProvisionUser(ctx, "msg_2", "user.created", fixed))
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		dup := &models.User{ClerkID: "user_3", Email: "a@example.com"}
		assert.ErrorIs(t, s.ProvisionUser(ctx, "", "user.created", dup), store.ErrConflict)
	})
}

func TestHealthProfileLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := provision(t, s, "user_1", "a@example.com")

	_, err := s.GetHealthProfile(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	p := models.NewHealthProfile(u.ID)
	p.Age = ptr(30)
	p.Height = ptr(180.0)
	p.Allergies = []string{"peanuts", "shellfish"}
	p.PregnancyStatus = ptr(false)
	require.NoError(t, s.CreateHealthProfile(ctx, p))
	assert.NotZero(t, p.ID)

	got, err := s.GetHealthProfile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, *got.Age)
	assert.Equal(t, 180.0, *got.Height)
	assert.Nil(t, got.Weight)
	assert.Equal(t, []string{"peanuts", "shellfish"}, got.Allergies)
	assert.Equal(t, []string{}, got.MedicalConditions)
	require.NotNil(t, got.PregnancyStatus)
	assert.False(t, *got.PregnancyStatus)
	assert.Nil(t, got.Breastfeeding)

	t.Run("second create for the same user conflicts", func(t *testing.T) {
		err := s.CreateHealthProfile(ctx, models.NewHealthProfile(u.ID))
		assert.ErrorIs(t, err, store.ErrConflict)
	})

	t.Run("update overwrites every attribute", func(t *testing.T) {
		next := got.Clone()
		next.Weight = ptr(75.0)
		next.Age = nil
		next.Allergies = []string{}
		require.NoError(t, s.UpdateHealthProfile(ctx, next))
		assert.Equal(t, got.ID, next.ID)

		stored, err := s.GetHealthProfile(ctx, u.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.Age)
		assert.Equal(t, 75.0, *stored.Weight)
		assert.Equal(t, 180.0, *stored.Height)
		assert.Equal(t, []string{}, stored.Allergies)
	})

	t.Run("user lookup includes the profile", func(t *testing.T) {
		found, err := s.GetUserByClerkID(ctx, "user_1")
		require.NoError(t, err)
		require.NotNil(t, found.HealthProfile)
		assert.Equal(t, u.ID, found.HealthProfile.UserID)
	})

	t.Run("delete then delete again", func(t *testing.T) {
		require.NoError(t, s.DeleteHealthProfile(ctx, u.ID))
		assert.ErrorIs(t, s.DeleteHealthProfile(ctx, u.ID), store.ErrNotFound)
		_, err := s.GetHealthProfile(ctx, u.ID)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update of a missing profile is not found", func(t *testing.T) {
		err := s.UpdateHealthProfile(ctx, models.NewHealthProfile(u.ID))
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestCreateHealthProfile_UnknownUser(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateHealthProfile(context.Background(), models.NewHealthProfile(999))
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrConflict)
}

func TestMemoryDSN(t *testing.T) {
	assert.Equal(t, "file:TestX_sub_case?mode=memory&cache=shared&_foreign_keys=on", MemoryDSN("TestX/sub case"))
}

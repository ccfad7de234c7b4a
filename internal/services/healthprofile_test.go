package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NUTRINO_BACK-END/internal/apperr"
	"NUTRINO_BACK-END/internal/dto"
	"NUTRINO_BACK-END/internal/models"
	"NUTRINO_BACK-END/internal/store"
)

func TestUpsert_CreateThenMerge(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "user_7", "seven@example.com")
	svc := NewHealthProfileService(s)
	ctx := context.Background()

	created, isNew, err := svc.Upsert(ctx, request(t, fmt.Sprintf(`{"userId": %d, "age": "30", "height": "180"}`, u.ID)))
	require.NoError(t, err)
	assert.True(t, isNew)
	require.NotNil(t, created.Age)
	assert.Equal(t, 30, *created.Age)
	assert.Equal(t, 180.0, *created.Height)
	assert.Nil(t, created.Weight)
	assert.Nil(t, created.Gender)
	assert.Nil(t, created.ActivityLevel)
	assert.Equal(t, []string{}, created.MedicalConditions)
	assert.Equal(t, []string{}, created.Allergies)
	assert.Equal(t, []string{}, created.DigestiveIssues)
	assert.Nil(t, created.PregnancyStatus)
	assert.Nil(t, created.Breastfeeding)
	assert.Nil(t, created.RecentSurgery)
	assert.Nil(t, created.ChronicPain)

	updated, isNew, err := svc.Upsert(ctx, request(t, fmt.Sprintf(`{"userId": "%d", "weight": "75"}`, u.ID)))
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 30, *updated.Age)
	assert.Equal(t, 180.0, *updated.Height)
	assert.Equal(t, 75.0, *updated.Weight)

	stored, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, *stored.Age)
	assert.Equal(t, 180.0, *stored.Height)
	assert.Equal(t, 75.0, *stored.Weight)
}

func TestUpsert_MergePreservesOtherFields(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "user_1", "one@example.com")
	svc := NewHealthProfileService(s)
	ctx := context.Background()

	full := fmt.Sprintf(`{
		"userId": %d, "age": 41, "gender": "male", "height": 172.5, "weight": "80",
		"activityLevel": "sedentary", "medicalConditions": ["diabetes"],
		"allergies": ["peanuts"], "digestiveIssues": ["ibs"],
		"pregnancyStatus": false, "breastfeeding": false, "recentSurgery": true, "chronicPain": null
	}`, u.ID)
	before, _, err := svc.Upsert(ctx, request(t, full))
	require.NoError(t, err)

	tests := []struct {
		name   string
		body   string
		mutate func(p *models.HealthProfile)
	}{
		{
			name:   "gender only",
			body:   `"gender": "female"`,
			mutate: func(p *models.HealthProfile) { v := "female"; p.Gender = &v },
		},
		{
			name:   "allergies only",
			body:   `"allergies": ["peanuts", "soy"]`,
			mutate: func(p *models.HealthProfile) { p.Allergies = []string{"peanuts", "soy"} },
		},
		{
			name:   "explicit empty list clears",
			body:   `"digestiveIssues": []`,
			mutate: func(p *models.HealthProfile) { p.DigestiveIssues = []string{} },
		},
		{
			name:   "explicit false overrides true",
			body:   `"recentSurgery": false`,
			mutate: func(p *models.HealthProfile) { v := false; p.RecentSurgery = &v },
		},
		{
			name:   "explicit null resets a flag to unknown",
			body:   `"breastfeeding": null`,
			mutate: func(p *models.HealthProfile) { p.Breastfeeding = nil },
		},
		{
			name:   "empty string keeps the stored number",
			body:   `"age": ""`,
			mutate: func(p *models.HealthProfile) {},
		},
	}

	prev := before
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, created, err := svc.Upsert(ctx, request(t, fmt.Sprintf(`{"userId": %d, %s}`, u.ID, tt.body)))
			require.NoError(t, err)
			assert.False(t, created)

			want := prev.Clone()
			tt.mutate(want)
			assertSameAttributes(t, want, got)
			prev = got
		})
	}
}

func TestUpsert_FalseIsNotOmitted(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "user_1", "one@example.com")
	svc := NewHealthProfileService(s)
	ctx := context.Background()

	p, _, err := svc.Upsert(ctx, request(t, fmt.Sprintf(`{"userId": %d, "pregnancyStatus": false}`, u.ID)))
	require.NoError(t, err)
	require.NotNil(t, p.PregnancyStatus)
	assert.False(t, *p.PregnancyStatus)
	assert.Nil(t, p.ChronicPain)

	p, _, err = svc.Upsert(ctx, request(t, fmt.Sprintf(`{"userId": %d, "chronicPain": true}`, u.ID)))
	require.NoError(t, err)
	require.NotNil(t, p.PregnancyStatus, "omitted flag must keep its stored false")
	assert.False(t, *p.PregnancyStatus)
	require.NotNil(t, p.ChronicPain)
	assert.True(t, *p.ChronicPain)
}

func TestUpsert_Idempotent(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "user_1", "one@example.com")
	svc := NewHealthProfileService(s)
	ctx := context.Background()
	body := fmt.Sprintf(`{"userId": %d, "age": "29", "allergies": ["milk"], "breastfeeding": true}`, u.ID)

	first, created, err := svc.Upsert(ctx, request(t, body))
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.Upsert(ctx, request(t, body))
	require.NoError(t, err)
	assert.False(t, created)
	assertSameAttributes(t, first, second)
}

func TestUpsert_RejectsBadInputWithoutSideEffects(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "user_1", "one@example.com")
	svc := NewHealthProfileService(s)
	ctx := context.Background()

	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"missing userId", `{"age": "30"}`, "userId is required"},
		{"null userId", `{"userId": null}`, "userId is required"},
		{"zero userId", `{"userId": 0}`, "userId must be a positive integer"},
		{"text userId", `{"userId": "seven"}`, "userId must be a positive integer"},
		{"non numeric age", fmt.Sprintf(`{"userId": %d, "age": "thirty"}`, u.ID), "age must be a whole number"},
		{"fractional age", fmt.Sprintf(`{"userId": %d, "age": 30.5}`, u.ID), "age must be a whole number"},
		{"age beyond int32", fmt.Sprintf(`{"userId": %d, "age": "3000000000"}`, u.ID), "age must be between 0 and 150"},
		{"implausible weight", fmt.Sprintf(`{"userId": %d, "weight": 5000}`, u.ID), "weight must not exceed 1000"},
		{"negative weight", fmt.Sprintf(`{"userId": %d, "weight": "-4"}`, u.ID), "weight must not be negative"},
		{"non numeric height", fmt.Sprintf(`{"userId": %d, "height": "tall"}`, u.ID), "height must be a number"},
		{"NaN height", fmt.Sprintf(`{"userId": %d, "height": "NaN"}`, u.ID), "height must be a number"},
		{"boolean age", fmt.Sprintf(`{"userId": %d, "age": true}`, u.ID), "age must be a number"},
		{"list as string", fmt.Sprintf(`{"userId": %d, "allergies": "nuts"}`, u.ID), "allergies must be a list of strings"},
		{"flag as string", fmt.Sprintf(`{"userId": %d, "chronicPain": "yes"}`, u.ID), "chronicPain must be true, false or null"},
		{"gender as number", fmt.Sprintf(`{"userId": %d, "gender": 1}`, u.ID), "gender must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Upsert(ctx, request(t, tt.body))
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	_, err := s.GetHealthProfile(ctx, u.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpsert_LosingConcurrentCreateIsConflict(t *testing.T) {
	fake := &fakeProfiles{
		get: func(context.Context, int64) (*models.HealthProfile, error) { return nil, store.ErrNotFound },
		create: func(context.Context, *models.HealthProfile) error {
			return fmt.Errorf("insert health profile: %w", store.ErrConflict)
		},
	}
	svc := NewHealthProfileService(fake)

	_, _, err := svc.Upsert(context.Background(), request(t, `{"userId": 3, "age": "30"}`))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestUpsert_ConcurrentFirstSubmissions(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "user_1", "one@example.com")
	svc := NewHealthProfileService(s)

	const workers = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		creates  int
		failures []error
	)
	reqs := make([]*dto.HealthStatusRequest, workers)
	for i := range reqs {
		reqs[i] = request(t, fmt.Sprintf(`{"userId": %d, "age": %d}`, u.ID, 20+i))
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, created, err := svc.Upsert(context.Background(), reqs[i])
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, err)
				return
			}
			if created {
				creates++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, creates)
	for _, err := range failures {
		assert.True(t, apperr.IsKind(err, apperr.KindConflict), "unexpected error: %v", err)
	}
	_, err := s.GetHealthProfile(context.Background(), u.ID)
	assert.NoError(t, err)
}

func TestUpsert_PersistenceFailureKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	fake := &fakeProfiles{
		get: func(context.Context, int64) (*models.HealthProfile, error) { return nil, cause },
	}
	svc := NewHealthProfileService(fake)

	_, _, err := svc.Upsert(context.Background(), request(t, `{"userId": 3}`))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindPersistence))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "connection refused", apperr.As(err).Detail())
}

func TestUpsert_UnknownUserIsPersistenceError(t *testing.T) {
	svc := NewHealthProfileService(newTestStore(t))

	_, _, err := svc.Upsert(context.Background(), request(t, `{"userId": 404, "age": "30"}`))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindPersistence))
}

func TestGetAndDelete(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "user_1", "one@example.com")
	svc := NewHealthProfileService(s)
	ctx := context.Background()

	_, err := svc.Get(ctx, u.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.True(t, apperr.IsKind(svc.Delete(ctx, u.ID), apperr.KindNotFound))

	_, _, err = svc.Upsert(ctx, request(t, fmt.Sprintf(`{"userId": %d, "gender": "female"}`, u.ID)))
	require.NoError(t, err)

	got, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "female", *got.Gender)

	require.NoError(t, svc.Delete(ctx, u.ID))
	_, err = svc.Get(ctx, u.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.True(t, apperr.IsKind(svc.Delete(ctx, u.ID), apperr.KindNotFound))
}

func assertSameAttributes(t *testing.T, want, got *models.HealthProfile) {
	t.Helper()
	assert.Equal(t, want.UserID, got.UserID)
	assert.Equal(t, want.Age, got.Age)
	assert.Equal(t, want.Gender, got.Gender)
	assert.Equal(t, want.Height, got.Height)
	assert.Equal(t, want.Weight, got.Weight)
	assert.Equal(t, want.ActivityLevel, got.ActivityLevel)
	assert.Equal(t, want.MedicalConditions, got.MedicalConditions)
	assert.Equal(t, want.Allergies, got.Allergies)
	assert.Equal(t, want.DigestiveIssues, got.DigestiveIssues)
	assert.Equal(t, want.PregnancyStatus, got.PregnancyStatus)
	assert.Equal(t, want.Breastfeeding, got.Breastfeeding)
	assert.Equal(t, want.RecentSurgery, got.RecentSurgery)
	assert.Equal(t, want.ChronicPain, got.ChronicPain)
}

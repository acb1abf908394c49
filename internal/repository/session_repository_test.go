package repository

import (
	"context"
	"testing"
	"time"

	"medicompare/internal/domain/entity"
	domainRepo "medicompare/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession() *entity.FlowSession {
	now := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	s := entity.NewFlowSession("9876543210", now)
	s.SetCity("Hyderabad", now)
	result := entity.SearchResult{
		Hospital: entity.Hospital{ID: "H001", Name: "Apollo Hospital", City: "Hyderabad", Rating: 4.7, Specialties: []string{"Cardiology"}},
		Treatment: entity.Treatment{
			ID: "T001", Name: "Heart Surgery", HospitalID: "H001",
			Cost: decimal.NewFromInt(3000), ConsultationFee: decimal.NewFromInt(500),
		},
	}
	s.RecordSearch("Heart Surgery", entity.DefaultBudget(), []entity.SearchResult{result}, now)
	s.SelectForDetail(result, now)
	return s
}

func TestSessionMemoryRepository_SaveFindDelete(t *testing.T) {
	repo := NewSessionMemoryRepository(time.Minute)
	ctx := context.Background()
	s := sampleSession()

	require.NoError(t, repo.Save(ctx, s))

	found, err := repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Hyderabad", found.City)
	require.Len(t, found.Results, 1)
	require.NotNil(t, found.Selected)

	require.NoError(t, repo.Delete(ctx, s.ID))
	found, err = repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionMemoryRepository_StoresCopies(t *testing.T) {
	repo := NewSessionMemoryRepository(0)
	ctx := context.Background()
	s := sampleSession()
	require.NoError(t, repo.Save(ctx, s))

	s.City = "Mumbai"
	s.Results[0].Hospital.Specialties[0] = "changed"

	found, err := repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hyderabad", found.City)
	assert.Equal(t, "Cardiology", found.Results[0].Hospital.Specialties[0])

	found.Selected.Hospital.Name = "changed"
	again, _ := repo.FindByID(ctx, s.ID)
	assert.Equal(t, "Apollo Hospital", again.Selected.Hospital.Name)
}

func TestSessionMemoryRepository_Expiry(t *testing.T) {
	repo := NewSessionMemoryRepository(time.Minute).(*sessionMemoryRepository)
	current := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return current }
	ctx := context.Background()

	s := sampleSession()
	require.NoError(t, repo.Save(ctx, s))

	current = current.Add(59 * time.Second)
	found, err := repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.NotNil(t, found)

	current = current.Add(2 * time.Second)
	found, err = repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionMemoryRepository_UnknownID(t *testing.T) {
	repo := NewSessionMemoryRepository(time.Minute)

	found, err := repo.FindByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionMemoryRepository_SaveEvictsExpiredSessions(t *testing.T) {
	repo := NewSessionMemoryRepository(time.Minute).(*sessionMemoryRepository)
	current := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return current }
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		require.NoError(t, repo.Save(ctx, entity.NewFlowSession("9876543210", current)))
	}
	require.Len(t, repo.sessions, 1000)

	// none of the first batch is ever read again
	current = current.Add(2 * time.Minute)
	for i := 0; i < 10; i++ {
		require.NoError(t, repo.Save(ctx, entity.NewFlowSession("9123456789", current)))
	}

	assert.Len(t, repo.sessions, 10)
}

func TestSessionMemoryRepository_SweepKeepsLiveSessions(t *testing.T) {
	repo := NewSessionMemoryRepository(time.Minute).(*sessionMemoryRepository)
	current := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return current }
	ctx := context.Background()

	old := sampleSession()
	require.NoError(t, repo.Save(ctx, old))

	current = current.Add(50 * time.Second)
	live := sampleSession()
	require.NoError(t, repo.Save(ctx, live))

	current = current.Add(20 * time.Second)
	require.NoError(t, repo.Save(ctx, sampleSession()))

	assert.NotContains(t, repo.sessions, old.ID)
	assert.Contains(t, repo.sessions, live.ID)
}

func TestSessionMemoryRepository_FindKeepsSessionRefreshedConcurrently(t *testing.T) {
	repo := NewSessionMemoryRepository(time.Minute).(*sessionMemoryRepository)
	current := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()
	s := sampleSession()

	repo.now = func() time.Time { return current }
	require.NoError(t, repo.Save(ctx, s))
	current = current.Add(2 * time.Minute)

	// the first clock read inside FindByID happens between the read and write locks;
	// refresh the session there, as a concurrent Save would
	refresh := true
	repo.now = func() time.Time {
		if refresh {
			refresh = false
			require.NoError(t, repo.Save(ctx, s))
		}
		return current
	}

	found, err := repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, s.ID, found.ID)
	assert.Contains(t, repo.sessions, s.ID)
}

func newMiniredisRepository(t *testing.T, expiry time.Duration) (domainRepo.SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSessionRedisRepository(client, expiry), mr
}

func TestSessionRedisRepository_RoundTrip(t *testing.T) {
	repo, mr := newMiniredisRepository(t, time.Minute)
	ctx := context.Background()

	s := sampleSession()
	require.NoError(t, repo.Save(ctx, s))

	found, err := repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, s.ID, found.ID)
	assert.Equal(t, "Hyderabad", found.City)
	require.Len(t, found.Results, 1)
	assert.True(t, found.Results[0].Treatment.Cost.Equal(decimal.NewFromInt(3000)))
	require.NotNil(t, found.Selected)
	assert.Equal(t, "T001", found.Selected.Treatment.ID)

	assert.Equal(t, time.Minute, mr.TTL(sessionKey(s.ID)))

	require.NoError(t, repo.Delete(ctx, s.ID))
	found, err = repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionRedisRepository_ExpiresAfterTTL(t *testing.T) {
	repo, mr := newMiniredisRepository(t, time.Minute)
	ctx := context.Background()

	s := sampleSession()
	require.NoError(t, repo.Save(ctx, s))

	mr.FastForward(61 * time.Second)

	found, err := repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionRedisRepository_EmptyResultsDecodeAsEmptySlice(t *testing.T) {
	repo, mr := newMiniredisRepository(t, time.Minute)
	ctx := context.Background()

	s := entity.NewFlowSession("9876543210", time.Now())
	require.NoError(t, mr.Set(sessionKey(s.ID), `{"id":"`+s.ID.String()+`","phone":"9876543210","results":null}`))

	found, err := repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.NotNil(t, found.Results)
	assert.Empty(t, found.Results)
}

func TestSessionRedisRepository_ServerDownIsAnError(t *testing.T) {
	repo, mr := newMiniredisRepository(t, time.Minute)
	mr.Close()

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.Error(t, err)
}

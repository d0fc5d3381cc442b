package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshydv24/event-nexus-backend/internal/events/domain"
)

func setupTestRedis(t *testing.T) *redis.Client {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

func newEvent(clubID string) *domain.Event {
	return &domain.Event{
		Name:                 "Annual Hackathon 2024",
		Description:          "A 24-hour coding competition.",
		Date:                 "2024-03-15",
		ExpectedParticipants: 200,
		ClubID:               clubID,
		ClubName:             "Tech Innovators Club",
		Status:               domain.StatusPendingApproval,
		Participants:         []domain.EventParticipant{},
	}
}

func TestEventRepository_CreateAndGet(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewEventRepository(client)
	ctx := context.Background()

	event := newEvent("club-1")
	require.NoError(t, repo.Create(ctx, event))
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.Name, got.Name)
	assert.Equal(t, event.ClubID, got.ClubID)
	assert.Equal(t, domain.StatusPendingApproval, got.Status)
	assert.Empty(t, got.Participants)
}

func TestEventRepository_GetMissing(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewEventRepository(client)

	_, err := repo.GetByID(context.Background(), "no-such-event")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventRepository_RoundTrip(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewEventRepository(client)
	ctx := context.Background()

	event := newEvent("club-1")
	require.NoError(t, repo.Create(ctx, event))

	// Reloading with no intervening mutation yields identical records.
	first, err := repo.GetByID(ctx, event.ID)
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEventRepository_UpdateMissing(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewEventRepository(client)

	event := newEvent("club-1")
	event.ID = "ghost"
	err := repo.Update(context.Background(), event)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventRepository_UpdateTouchesOnlyOneRecord(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewEventRepository(client)
	ctx := context.Background()

	a := newEvent("club-1")
	b := newEvent("club-1")
	b.Name = "AI Workshop Series"
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	before, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)

	a.Status = domain.StatusApproved
	require.NoError(t, repo.Update(ctx, a))

	after, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestEventRepository_ListFilters(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewEventRepository(client)
	ctx := context.Background()

	a := newEvent("club-1")
	b := newEvent("club-2")
	b.Status = domain.StatusApproved
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := repo.List(ctx, domain.StatusPendingApproval)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, a.ID, pending[0].ID)

	club2, err := repo.ListByClub(ctx, "club-2", "")
	require.NoError(t, err)
	require.Len(t, club2, 1)
	assert.Equal(t, b.ID, club2[0].ID)

	none, err := repo.ListByClub(ctx, "club-2", domain.StatusRejected)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEventRepository_Delete(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewEventRepository(client)
	ctx := context.Background()

	event := newEvent("club-1")
	require.NoError(t, repo.Create(ctx, event))
	require.NoError(t, repo.Delete(ctx, event.ID))

	_, err := repo.GetByID(ctx, event.ID)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshydv24/event-nexus-backend/internal/clubs/domain"
	"github.com/harshydv24/event-nexus-backend/internal/clubs/repository"
)

func setupClubs(t *testing.T) *ClubService {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewClubService(repository.NewClubRepository(client))
}

func TestClubService_EnsureClub(t *testing.T) {
	svc := setupClubs(t)
	ctx := context.Background()

	club, err := svc.EnsureClub(ctx, "club-1", "Tech Innovators Club")
	require.NoError(t, err)
	assert.Equal(t, "club-1", club.ID)
	assert.Equal(t, "Tech Innovators Club", club.Name)
	assert.True(t, club.FacultyAdvisor.IsFacultyAdvisor)
	assert.True(t, club.President.IsPresident)
	assert.Equal(t, "Tech Innovators Club President", club.President.Name)
	assert.Empty(t, club.CoreTeam)

	// Second call returns the existing record unchanged.
	again, err := svc.EnsureClub(ctx, "club-1", "Some Other Name")
	require.NoError(t, err)
	assert.Equal(t, club.President.ID, again.President.ID)
	assert.Equal(t, "Tech Innovators Club", again.Name)
}

func TestClubService_Update(t *testing.T) {
	svc := setupClubs(t)
	ctx := context.Background()

	_, err := svc.EnsureClub(ctx, "club-1", "Tech Innovators Club")
	require.NoError(t, err)

	desc := "We build things."
	club, err := svc.Update(ctx, "club-1", &domain.UpdateClubRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "We build things.", club.Description)
	assert.Equal(t, "Tech Innovators Club", club.Name)

	_, err = svc.Update(ctx, "ghost", &domain.UpdateClubRequest{Description: &desc})
	assert.ErrorIs(t, err, domain.ErrClubNotFound)
}

func TestClubService_AddCoreMember(t *testing.T) {
	svc := setupClubs(t)
	ctx := context.Background()

	_, err := svc.EnsureClub(ctx, "club-1", "Tech Innovators Club")
	require.NoError(t, err)

	club, err := svc.AddCoreMember(ctx, "club-1", domain.ClubMember{
		Name: "Ravi", Designation: "Technical Lead", IsPresident: true,
	})
	require.NoError(t, err)
	require.Len(t, club.CoreTeam, 1)
	assert.NotEmpty(t, club.CoreTeam[0].ID)
	assert.False(t, club.CoreTeam[0].IsPresident, "core members never carry leadership flags")

	club, err = svc.AddCoreMember(ctx, "club-1", domain.ClubMember{Name: "Meera", Designation: "Design Lead"})
	require.NoError(t, err)
	require.Len(t, club.CoreTeam, 2)
	assert.Equal(t, "Ravi", club.CoreTeam[0].Name)
	assert.Equal(t, "Meera", club.CoreTeam[1].Name)

	_, err = svc.AddCoreMember(ctx, "club-1", domain.ClubMember{Designation: "No Name"})
	assert.ErrorIs(t, err, domain.ErrInvalidClub)
}

func TestClubService_IncrementEventsCount(t *testing.T) {
	svc := setupClubs(t)
	ctx := context.Background()

	// No record yet: the counter creates the skeleton first.
	require.NoError(t, svc.IncrementEventsCount(ctx, "club-1", "Tech Innovators Club"))

	club, err := svc.Get(ctx, "club-1")
	require.NoError(t, err)
	assert.Equal(t, "Tech Innovators Club", club.Name)
	assert.Equal(t, 1, club.EventsCount)

	require.NoError(t, svc.IncrementEventsCount(ctx, "club-1", "Tech Innovators Club"))

	club, err = svc.Get(ctx, "club-1")
	require.NoError(t, err)
	assert.Equal(t, 2, club.EventsCount)
}

func TestClubService_List(t *testing.T) {
	svc := setupClubs(t)
	ctx := context.Background()

	_, err := svc.EnsureClub(ctx, "club-1", "Tech Innovators Club")
	require.NoError(t, err)
	_, err = svc.EnsureClub(ctx, "club-2", "Drama Society")
	require.NoError(t, err)

	clubs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, clubs, 2)
}

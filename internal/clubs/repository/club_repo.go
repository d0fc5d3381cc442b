package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harshydv24/event-nexus-backend/internal/clubs/domain"
	"github.com/redis/go-redis/v9"
)

const (
	clubKeyPrefix = "portal:clubrec:" // Key for club data: portal:clubrec:{club_id}
	clubIndexKey  = "portal:clubs"    // Set of all club IDs
)

// ClubRepository handles Redis operations for clubs. Each club is one
// JSON blob; leadership and core team live inside it.
type ClubRepository struct {
	client *redis.Client
}

func NewClubRepository(client *redis.Client) *ClubRepository {
	return &ClubRepository{client: client}
}

// Create stores a new club record.
func (r *ClubRepository) Create(ctx context.Context, club *domain.Club) error {
	if club.ID == "" {
		club.ID = uuid.New().String()
	}
	if club.CreatedAt.IsZero() {
		club.CreatedAt = time.Now()
	}
	club.UpdatedAt = time.Now()
	if club.CoreTeam == nil {
		club.CoreTeam = []domain.ClubMember{}
	}

	data, err := json.Marshal(club)
	if err != nil {
		return fmt.Errorf("failed to marshal club: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.clubKey(club.ID), data, 0)
	pipe.SAdd(ctx, clubIndexKey, club.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create club: %w", err)
	}

	return nil
}

// GetByID retrieves a club by its ID.
func (r *ClubRepository) GetByID(ctx context.Context, clubID string) (*domain.Club, error) {
	data, err := r.client.Get(ctx, r.clubKey(clubID)).Result()
	if err == redis.Nil {
		return nil, domain.ErrClubNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get club: %w", err)
	}

	var club domain.Club
	if err := json.Unmarshal([]byte(data), &club); err != nil {
		return nil, fmt.Errorf("failed to unmarshal club: %w", err)
	}

	return &club, nil
}

// Update overwrites a single club record.
func (r *ClubRepository) Update(ctx context.Context, club *domain.Club) error {
	exists, err := r.client.Exists(ctx, r.clubKey(club.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check club: %w", err)
	}
	if exists == 0 {
		return domain.ErrClubNotFound
	}

	club.UpdatedAt = time.Now()

	data, err := json.Marshal(club)
	if err != nil {
		return fmt.Errorf("failed to marshal club: %w", err)
	}

	if err := r.client.Set(ctx, r.clubKey(club.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to update club: %w", err)
	}

	return nil
}

// List retrieves all clubs.
func (r *ClubRepository) List(ctx context.Context) ([]*domain.Club, error) {
	ids, err := r.client.SMembers(ctx, clubIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}

	clubs := make([]*domain.Club, 0, len(ids))
	for _, id := range ids {
		club, err := r.GetByID(ctx, id)
		if err == domain.ErrClubNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, club)
	}

	return clubs, nil
}

// IncrementEventsCount bumps the club's proposal counter.
func (r *ClubRepository) IncrementEventsCount(ctx context.Context, clubID string) error {
	club, err := r.GetByID(ctx, clubID)
	if err != nil {
		return err
	}
	club.EventsCount++
	return r.Update(ctx, club)
}

func (r *ClubRepository) clubKey(clubID string) string {
	return fmt.Sprintf("%s%s", clubKeyPrefix, clubID)
}

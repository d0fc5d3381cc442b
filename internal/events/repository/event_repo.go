package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harshydv24/event-nexus-backend/internal/events/domain"
	"github.com/redis/go-redis/v9"
)

const (
	eventKeyPrefix     = "portal:event:"  // Key for event data: portal:event:{event_id}
	eventIndexKey      = "portal:events"  // Set of all event IDs
	clubEventSetPrefix = "portal:club:"   // Set of event IDs per club: portal:club:{club_id}:events
	eventChannelPrefix = "portal:events:" // Pub/Sub channel for event updates: portal:events:{event_id}
)

// EventRepository handles Redis operations for events. Each event is a
// single JSON blob keyed by its ID; participants live inside the blob.
type EventRepository struct {
	client *redis.Client
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(client *redis.Client) *EventRepository {
	return &EventRepository{client: client}
}

// Create stores a new event and adds it to the indexes.
func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	event.UpdatedAt = time.Now()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.eventKey(event.ID), data, 0)
	pipe.SAdd(ctx, eventIndexKey, event.ID)
	pipe.SAdd(ctx, r.clubEventSetKey(event.ClubID), event.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

// GetByID retrieves an event by its ID.
func (r *EventRepository) GetByID(ctx context.Context, eventID string) (*domain.Event, error) {
	data, err := r.client.Get(ctx, r.eventKey(eventID)).Result()
	if err == redis.Nil {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	var event domain.Event
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}

// Update overwrites a single event record. Unlike the old portal, a
// write never touches any other event.
func (r *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	exists, err := r.client.Exists(ctx, r.eventKey(event.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check event: %w", err)
	}
	if exists == 0 {
		return domain.ErrEventNotFound
	}

	event.UpdatedAt = time.Now()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := r.client.Set(ctx, r.eventKey(event.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	// Publish the updated record so dashboards can refresh.
	r.client.Publish(ctx, r.eventChannel(event.ID), data)

	return nil
}

// List retrieves all events, optionally filtered by status.
func (r *EventRepository) List(ctx context.Context, status domain.Status) ([]*domain.Event, error) {
	ids, err := r.client.SMembers(ctx, eventIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return r.collect(ctx, ids, status)
}

// ListByClub retrieves all events owned by a club, optionally filtered
// by status.
func (r *EventRepository) ListByClub(ctx context.Context, clubID string, status domain.Status) ([]*domain.Event, error) {
	ids, err := r.client.SMembers(ctx, r.clubEventSetKey(clubID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list club events: %w", err)
	}
	return r.collect(ctx, ids, status)
}

// Delete removes an event and its index entries.
func (r *EventRepository) Delete(ctx context.Context, eventID string) error {
	event, err := r.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.eventKey(eventID))
	pipe.SRem(ctx, eventIndexKey, eventID)
	pipe.SRem(ctx, r.clubEventSetKey(event.ClubID), eventID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

func (r *EventRepository) collect(ctx context.Context, ids []string, status domain.Status) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0, len(ids))
	for _, id := range ids {
		event, err := r.GetByID(ctx, id)
		if err == domain.ErrEventNotFound {
			// Index entry outlived the record; skip it.
			continue
		}
		if err != nil {
			return nil, err
		}
		if status != "" && event.Status != status {
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

// Helper methods for key generation
func (r *EventRepository) eventKey(eventID string) string {
	return fmt.Sprintf("%s%s", eventKeyPrefix, eventID)
}

func (r *EventRepository) clubEventSetKey(clubID string) string {
	return fmt.Sprintf("%s%s:events", clubEventSetPrefix, clubID)
}

func (r *EventRepository) eventChannel(eventID string) string {
	return fmt.Sprintf("%s%s", eventChannelPrefix, eventID)
}

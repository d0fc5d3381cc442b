package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harshydv24/event-nexus-backend/internal/auth/domain"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "portal:session:" // Key for session data: portal:session:{user_id}

// SessionRepository tracks live logins in Redis. A session record with
// a TTL replaces the old portal's ambient "current user" global: logout
// deletes the record, and token checks fail once it is gone.
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

// Put stores a session until its expiry.
func (r *SessionRepository) Put(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	if err := r.client.Set(ctx, r.sessionKey(session.UserID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

// Get retrieves the live session for a user, if any.
func (r *SessionRepository) Get(ctx context.Context, userID string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(userID)).Result()
	if err == redis.Nil {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// Delete removes a user's session (logout).
func (r *SessionRepository) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, r.sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) sessionKey(userID string) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, userID)
}

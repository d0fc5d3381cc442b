package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harshydv24/event-nexus-backend/internal/auth/domain"
	"github.com/redis/go-redis/v9"
)

const (
	userKeyPrefix = "portal:user:" // Key for user data: portal:user:{email}_{role}
	userIndexKey  = "portal:users" // Set of all user keys
)

// UserRepository handles Redis operations for identity records. The
// composite (email, role) pair is the lookup key: the same email may
// hold a student account and a club account side by side.
type UserRepository struct {
	client *redis.Client
}

func NewUserRepository(client *redis.Client) *UserRepository {
	return &UserRepository{client: client}
}

// Create stores a new identity. Fails with ErrUserExists when the
// (email, role) pair is already taken; the first identity is unchanged.
func (r *UserRepository) Create(ctx context.Context, user *domain.StoredUser) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	key := r.userKey(user.Email, user.Role)
	ok, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if !ok {
		return domain.ErrUserExists
	}

	if err := r.client.SAdd(ctx, userIndexKey, key).Err(); err != nil {
		return fmt.Errorf("failed to index user: %w", err)
	}

	return nil
}

// GetByEmailRole retrieves an identity by its composite key.
func (r *UserRepository) GetByEmailRole(ctx context.Context, email string, role domain.Role) (*domain.StoredUser, error) {
	data, err := r.client.Get(ctx, r.userKey(email, role)).Result()
	if err == redis.Nil {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user domain.StoredUser
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) userKey(email string, role domain.Role) string {
	return fmt.Sprintf("%s%s_%s", userKeyPrefix, strings.ToLower(email), role)
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harshydv24/event-nexus-backend/internal/venues/domain"
)

// VenueRepository reads the venue catalog from Postgres.
type VenueRepository struct {
	db *sql.DB
}

func NewVenueRepository(db *sql.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// List returns the full catalog ordered by name.
func (r *VenueRepository) List(ctx context.Context) ([]domain.Venue, error) {
	const query = `
		SELECT id, name, capacity, available
		FROM venues
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	var venues []domain.Venue
	for rows.Next() {
		var v domain.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Capacity, &v.Available); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}

	return venues, nil
}

// GetByName looks up one venue by its display name.
func (r *VenueRepository) GetByName(ctx context.Context, name string) (*domain.Venue, error) {
	const query = `
		SELECT id, name, capacity, available
		FROM venues
		WHERE name = $1
	`

	var v domain.Venue
	err := r.db.QueryRowContext(ctx, query, name).Scan(&v.ID, &v.Name, &v.Capacity, &v.Available)
	if err == sql.ErrNoRows {
		return nil, domain.ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	return &v, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id        TEXT PRIMARY KEY,
		name      TEXT NOT NULL UNIQUE,
		capacity  INT  NOT NULL,
		available BOOL NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS event_decisions (
		id         BIGSERIAL PRIMARY KEY,
		event_id   TEXT NOT NULL,
		action     TEXT NOT NULL,
		actor_id   TEXT NOT NULL,
		feedback   TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_event_decisions_event_id ON event_decisions (event_id)`,
}

// The campus venue catalog. Fixed set; capacity drives the
// venue-selection check.
var seedVenues = []struct {
	id       string
	name     string
	capacity int
}{
	{"c1-audi", "C1 Auditorium", 500},
	{"c3-audi", "C3 Auditorium", 300},
	{"b1", "B1 Hall", 150},
	{"d7", "D7 Conference Room", 80},
	{"open-air", "Open Air Theatre", 1000},
	{"seminar-hall", "Seminar Hall", 200},
}

// Migrate creates the tables and seeds the venue catalog. Safe to run
// on every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	const upsert = `
		INSERT INTO venues (id, name, capacity, available)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (id) DO NOTHING
	`
	for _, v := range seedVenues {
		if _, err := db.ExecContext(ctx, upsert, v.id, v.name, v.capacity); err != nil {
			return fmt.Errorf("seed venue %s: %w", v.name, err)
		}
	}

	return nil
}

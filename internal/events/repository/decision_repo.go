package repository

import (
	"context"
	"fmt"

	"github.com/harshydv24/event-nexus-backend/internal/events/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DecisionRepository persists the append-only audit log of lifecycle
// decisions (approve, reject, venue assignment, completion) in Postgres.
type DecisionRepository struct {
	db *pgxpool.Pool
}

func NewDecisionRepository(db *pgxpool.Pool) *DecisionRepository {
	return &DecisionRepository{db: db}
}

// Append records one decision. Entries are never updated or deleted.
func (r *DecisionRepository) Append(ctx context.Context, d *domain.Decision) error {
	const q = `
insert into event_decisions (event_id, action, actor_id, feedback)
values ($1, $2, $3, nullif($4,''))
returning id, created_at;
`
	if err := r.db.QueryRow(ctx, q, d.EventID, string(d.Action), d.ActorID, d.Feedback).
		Scan(&d.ID, &d.CreatedAt); err != nil {
		return fmt.Errorf("append decision: %w", err)
	}
	return nil
}

// ListByEvent returns all decisions for an event, oldest first.
func (r *DecisionRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Decision, error) {
	const q = `
select id, event_id, action, actor_id, coalesce(feedback, ''), created_at
from event_decisions
where event_id = $1
order by created_at asc, id asc;
`
	rows, err := r.db.Query(ctx, q, eventID)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var decisions []domain.Decision
	for rows.Next() {
		var d domain.Decision
		var action string
		if err := rows.Scan(&d.ID, &d.EventID, &action, &d.ActorID, &d.Feedback, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		d.Action = domain.Action(action)
		decisions = append(decisions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate decisions: %w", err)
	}

	return decisions, nil
}

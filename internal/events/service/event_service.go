package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/harshydv24/event-nexus-backend/internal/events/domain"
	"github.com/harshydv24/event-nexus-backend/internal/events/repository"
	venuedomain "github.com/harshydv24/event-nexus-backend/internal/venues/domain"
)

// DecisionLog records lifecycle decisions. Implemented by the Postgres
// decision repository; nil-able for deployments without a database.
type DecisionLog interface {
	Append(ctx context.Context, d *domain.Decision) error
	ListByEvent(ctx context.Context, eventID string) ([]domain.Decision, error)
}

// VenueCatalog resolves venue names against the fixed catalog.
type VenueCatalog interface {
	GetByName(ctx context.Context, name string) (*venuedomain.Venue, error)
}

// ClubCounter bumps a club's events count when a proposal is
// submitted. Club records are created lazily, so the counter must
// tolerate a club that has never been stored yet.
type ClubCounter interface {
	IncrementEventsCount(ctx context.Context, clubID, clubName string) error
}

// EventService owns the event lifecycle. Every status change goes
// through the transition table; invariants that the old portal left to
// the UI (duplicate registration, capacity, feedback on rejection) are
// enforced here so they hold for every caller.
type EventService struct {
	eventRepo *repository.EventRepository
	decisions DecisionLog
	venues    VenueCatalog
	clubs     ClubCounter
}

// NewEventService creates an EventService with just the event store.
func NewEventService(eventRepo *repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// NewEventServiceWithAudit wires the optional collaborators: the
// decision log, the venue catalog and the club counter.
func NewEventServiceWithAudit(eventRepo *repository.EventRepository, decisions DecisionLog, venues VenueCatalog, clubs ClubCounter) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		decisions: decisions,
		venues:    venues,
		clubs:     clubs,
	}
}

// Create submits a new proposal. Status is always pending_approval and
// the participant list always starts empty, regardless of the caller.
func (s *EventService) Create(ctx context.Context, req *domain.CreateEventRequest) (*domain.Event, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:                   uuid.New().String(),
		Name:                 req.Name,
		Description:          req.Description,
		Date:                 req.Date,
		ExpectedParticipants: req.ExpectedParticipants,
		GuestName:            req.GuestName,
		Poster:               req.Poster,
		ProposalPDF:          req.ProposalPDF,
		M2MPDF:               req.M2MPDF,
		ClubID:               req.ClubID,
		ClubName:             req.ClubName,
		Status:               domain.StatusPendingApproval,
		Participants:         []domain.EventParticipant{},
		CreatedAt:            time.Now(),
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	if s.clubs != nil {
		if err := s.clubs.IncrementEventsCount(ctx, event.ClubID, event.ClubName); err != nil {
			return nil, fmt.Errorf("increment club events count: %w", err)
		}
	}

	return event, nil
}

// Approve moves a pending proposal to approved.
func (s *EventService) Approve(ctx context.Context, eventID, actorID string) (*domain.Event, error) {
	return s.transition(ctx, eventID, actorID, domain.ActionApprove, "", func(e *domain.Event) {})
}

// Reject moves a proposal to rejected and attaches the department's
// feedback. Feedback is mandatory.
func (s *EventService) Reject(ctx context.Context, eventID, actorID, feedback string) (*domain.Event, error) {
	if strings.TrimSpace(feedback) == "" {
		return nil, domain.ErrMissingFeedback
	}
	return s.transition(ctx, eventID, actorID, domain.ActionReject, feedback, func(e *domain.Event) {
		e.Feedback = feedback
	})
}

// SelectVenue assigns a venue and time to an approved event. The venue
// must exist in the catalog, be available, and hold the expected crowd.
func (s *EventService) SelectVenue(ctx context.Context, eventID, actorID, venue, eventTime string) (*domain.Event, error) {
	if strings.TrimSpace(venue) == "" || strings.TrimSpace(eventTime) == "" {
		return nil, fmt.Errorf("%w: venue and time are required", domain.ErrInvalidEvent)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if s.venues != nil {
		v, err := s.venues.GetByName(ctx, venue)
		if errors.Is(err, venuedomain.ErrVenueNotFound) {
			return nil, domain.ErrUnknownVenue
		}
		if err != nil {
			return nil, err
		}
		if !v.Available {
			return nil, domain.ErrUnknownVenue
		}
		if v.Capacity < event.ExpectedParticipants {
			return nil, fmt.Errorf("%w: %s holds %d, expected %d",
				domain.ErrVenueTooSmall, v.Name, v.Capacity, event.ExpectedParticipants)
		}
	}

	return s.transition(ctx, eventID, actorID, domain.ActionSelectVenue, "", func(e *domain.Event) {
		e.Venue = venue
		e.Time = eventTime
	})
}

// Complete marks a venue-assigned event as held.
func (s *EventService) Complete(ctx context.Context, eventID, actorID string) (*domain.Event, error) {
	return s.transition(ctx, eventID, actorID, domain.ActionComplete, "", func(e *domain.Event) {})
}

// Register appends one participant to an event open for registration.
func (s *EventService) Register(ctx context.Context, eventID string, req *domain.RegisterRequest) (*domain.Event, error) {
	return s.register(ctx, eventID, []*domain.RegisterRequest{req})
}

// RegisterTeam appends a team in one write: either every member is
// registered or none are.
func (s *EventService) RegisterTeam(ctx context.Context, eventID string, reqs []*domain.RegisterRequest) (*domain.Event, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: empty team", domain.ErrInvalidEvent)
	}
	return s.register(ctx, eventID, reqs)
}

// Get retrieves a single event.
func (s *EventService) Get(ctx context.Context, eventID string) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, eventID)
}

// List retrieves events, optionally filtered by status.
func (s *EventService) List(ctx context.Context, status domain.Status) ([]*domain.Event, error) {
	if status != "" && !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidEvent, status)
	}
	return s.eventRepo.List(ctx, status)
}

// ListByClub retrieves a club's events, optionally filtered by status.
func (s *EventService) ListByClub(ctx context.Context, clubID string, status domain.Status) ([]*domain.Event, error) {
	if status != "" && !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidEvent, status)
	}
	return s.eventRepo.ListByClub(ctx, clubID, status)
}

// History returns the audit trail of lifecycle decisions for an event.
func (s *EventService) History(ctx context.Context, eventID string) ([]domain.Decision, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	if s.decisions == nil {
		return nil, nil
	}
	return s.decisions.ListByEvent(ctx, eventID)
}

// CompletePastEvents sweeps venue-assigned events whose date has passed
// and marks them completed. Returns the number of events completed.
func (s *EventService) CompletePastEvents(ctx context.Context, now time.Time) (int, error) {
	events, err := s.eventRepo.List(ctx, domain.StatusVenueSelected)
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, event := range events {
		date, err := time.Parse("2006-01-02", event.Date)
		if err != nil {
			// Legacy records carry free-form dates; leave them alone.
			continue
		}
		if !date.Before(now.Truncate(24 * time.Hour)) {
			continue
		}
		if _, err := s.Complete(ctx, event.ID, "system"); err != nil {
			return completed, err
		}
		completed++
	}

	return completed, nil
}

// transition applies one lifecycle action: check the table, mutate,
// persist, audit.
func (s *EventService) transition(ctx context.Context, eventID, actorID string, action domain.Action, feedback string, mutate func(*domain.Event)) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	next, err := domain.Transition(event.Status, action)
	if err != nil {
		return nil, err
	}

	mutate(event)
	event.Status = next

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	// The transition is already persisted; the audit log is advisory
	// and must not fail the operation after the fact.
	if s.decisions != nil {
		d := &domain.Decision{
			EventID:  event.ID,
			Action:   action,
			ActorID:  actorID,
			Feedback: feedback,
		}
		if err := s.decisions.Append(ctx, d); err != nil {
			log.Error().Err(err).
				Str("event_id", event.ID).
				Str("action", string(action)).
				Msg("failed to record decision")
		}
	}

	return event, nil
}

func (s *EventService) register(ctx context.Context, eventID string, reqs []*domain.RegisterRequest) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.Status != domain.StatusVenueSelected {
		return nil, domain.ErrNotOpenForEntry
	}

	if event.ExpectedParticipants > 0 && len(event.Participants)+len(reqs) > event.ExpectedParticipants {
		return nil, domain.ErrCapacityFull
	}

	seen := make(map[string]bool, len(reqs))
	now := time.Now()
	participants := make([]domain.EventParticipant, 0, len(reqs))
	for _, req := range reqs {
		if strings.TrimSpace(req.StudentID) == "" {
			return nil, fmt.Errorf("%w: student id is required", domain.ErrInvalidEvent)
		}
		if event.HasParticipant(req.StudentID) || seen[req.StudentID] {
			return nil, domain.ErrAlreadyRegistered
		}
		seen[req.StudentID] = true

		participants = append(participants, domain.EventParticipant{
			ID:            uuid.New().String(),
			EventID:       event.ID,
			StudentID:     req.StudentID,
			StudentName:   req.StudentName,
			StudentUID:    req.StudentUID,
			StudentEmail:  req.StudentEmail,
			StudentBranch: req.StudentBranch,
			StudentSec:    req.StudentSec,
			RegisteredAt:  now,
		})
	}

	event.Participants = append(event.Participants, participants...)

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func validateCreate(req *domain.CreateEventRequest) error {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return fmt.Errorf("%w: name is required", domain.ErrInvalidEvent)
	case strings.TrimSpace(req.Description) == "":
		return fmt.Errorf("%w: description is required", domain.ErrInvalidEvent)
	case strings.TrimSpace(req.Date) == "":
		return fmt.Errorf("%w: date is required", domain.ErrInvalidEvent)
	case strings.TrimSpace(req.ClubID) == "":
		return fmt.Errorf("%w: club id is required", domain.ErrInvalidEvent)
	case req.ExpectedParticipants <= 0:
		return fmt.Errorf("%w: expected participants must be positive", domain.ErrInvalidEvent)
	}
	return nil
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harshydv24/event-nexus-backend/internal/auth"
	"github.com/harshydv24/event-nexus-backend/internal/events/domain"
	"github.com/harshydv24/event-nexus-backend/internal/events/service"
)

type Handler struct {
	eventService *service.EventService
}

func New(eventService *service.EventService) *Handler {
	return &Handler{eventService: eventService}
}

// Create submits a new proposal for the caller's club.
func (h *Handler) Create(c *gin.Context) {
	user := auth.CurrentUser(c)

	var body createEventRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// A club account's display name is the club's name.
	event, err := h.eventService.Create(c.Request.Context(), &domain.CreateEventRequest{
		Name:                 body.Name,
		Description:          body.Description,
		Date:                 body.Date,
		ExpectedParticipants: body.ExpectedParticipants,
		GuestName:            body.GuestName,
		Poster:               body.Poster,
		ProposalPDF:          body.ProposalPDF,
		M2MPDF:               body.M2MPDF,
		ClubID:               user.ClubID,
		ClubName:             user.Name,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEvent) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"event": event})
}

// List returns events, filtered by the optional status and club_id
// query parameters.
func (h *Handler) List(c *gin.Context) {
	status := domain.Status(c.Query("status"))
	clubID := c.Query("club_id")

	var (
		events []*domain.Event
		err    error
	)
	if clubID != "" {
		events, err = h.eventService.ListByClub(c.Request.Context(), clubID, status)
	} else {
		events, err = h.eventService.List(c.Request.Context(), status)
	}
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEvent) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// Get returns one event.
func (h *Handler) Get(c *gin.Context) {
	event, err := h.eventService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// Approve transitions a pending proposal to approved.
func (h *Handler) Approve(c *gin.Context) {
	user := auth.CurrentUser(c)

	event, err := h.eventService.Approve(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// Reject transitions a proposal to rejected with mandatory feedback.
func (h *Handler) Reject(c *gin.Context) {
	user := auth.CurrentUser(c)

	var body rejectRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "feedback is required"})
		return
	}

	event, err := h.eventService.Reject(c.Request.Context(), c.Param("id"), user.ID, body.Feedback)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// SelectVenue assigns a venue and time to an approved event.
func (h *Handler) SelectVenue(c *gin.Context) {
	user := auth.CurrentUser(c)

	var body selectVenueRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "venue and time are required"})
		return
	}

	event, err := h.eventService.SelectVenue(c.Request.Context(), c.Param("id"), user.ID, body.Venue, body.Time)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// Complete marks a venue-assigned event as held.
func (h *Handler) Complete(c *gin.Context) {
	user := auth.CurrentUser(c)

	event, err := h.eventService.Complete(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// Register registers the calling student for an event. UID and email
// default to the student's own record.
func (h *Handler) Register(c *gin.Context) {
	user := auth.CurrentUser(c)

	var body registerMember
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	event, err := h.eventService.Register(c.Request.Context(), c.Param("id"), h.memberToRequest(user.ID, user.Name, user.UID, user.Email, body))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// RegisterTeam registers the calling student together with teammates.
// Teammates are identified by their university UID.
func (h *Handler) RegisterTeam(c *gin.Context) {
	user := auth.CurrentUser(c)

	var body registerTeamRequest
	if err := c.ShouldBindJSON(&body); err != nil || len(body.Members) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "members are required"})
		return
	}

	reqs := make([]*domain.RegisterRequest, 0, len(body.Members))
	for _, m := range body.Members {
		if m.StudentUID == user.UID || (m.StudentUID == "" && len(reqs) == 0) {
			// The caller's own entry.
			reqs = append(reqs, h.memberToRequest(user.ID, user.Name, user.UID, user.Email, m))
			continue
		}
		if m.StudentUID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "teammate student_uid is required"})
			return
		}
		reqs = append(reqs, &domain.RegisterRequest{
			StudentID:     m.StudentUID,
			StudentName:   m.StudentName,
			StudentUID:    m.StudentUID,
			StudentEmail:  m.StudentEmail,
			StudentBranch: m.StudentBranch,
			StudentSec:    m.StudentSec,
		})
	}

	event, err := h.eventService.RegisterTeam(c.Request.Context(), c.Param("id"), reqs)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// Participants lists an event's registrations.
func (h *Handler) Participants(c *gin.Context) {
	event, err := h.eventService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"participants": event.Participants})
}

// History lists the audit trail of lifecycle decisions for an event.
func (h *Handler) History(c *gin.Context) {
	decisions, err := h.eventService.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"decisions": decisions})
}

func (h *Handler) memberToRequest(userID, name, uid, email string, m registerMember) *domain.RegisterRequest {
	req := &domain.RegisterRequest{
		StudentID:     userID,
		StudentName:   name,
		StudentUID:    m.StudentUID,
		StudentEmail:  m.StudentEmail,
		StudentBranch: m.StudentBranch,
		StudentSec:    m.StudentSec,
	}
	if req.StudentUID == "" {
		req.StudentUID = uid
	}
	if req.StudentEmail == "" {
		req.StudentEmail = email
	}
	if m.StudentName != "" {
		req.StudentName = m.StudentName
	}
	return req
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrMissingFeedback),
		errors.Is(err, domain.ErrInvalidEvent),
		errors.Is(err, domain.ErrUnknownVenue),
		errors.Is(err, domain.ErrVenueTooSmall):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrCapacityFull),
		errors.Is(err, domain.ErrNotOpenForEntry):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

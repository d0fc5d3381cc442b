package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harshydv24/event-nexus-backend/internal/auth"
	"github.com/harshydv24/event-nexus-backend/internal/clubs/domain"
	"github.com/harshydv24/event-nexus-backend/internal/clubs/service"
)

type Handler struct {
	clubService *service.ClubService
}

func New(clubService *service.ClubService) *Handler {
	return &Handler{clubService: clubService}
}

type updateClubRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Logo        *string `json:"logo,omitempty"`
}

type addMemberRequest struct {
	Name        string `json:"name" binding:"required"`
	Designation string `json:"designation" binding:"required"`
	Photo       string `json:"photo,omitempty"`
}

// Me returns the caller's club, creating the record on first access.
func (h *Handler) Me(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user.ClubID == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "no club associated with this account"})
		return
	}

	club, err := h.clubService.EnsureClub(c.Request.Context(), user.ClubID, user.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load club"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"club": club})
}

// Get returns one club.
func (h *Handler) Get(c *gin.Context) {
	club, err := h.clubService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"club": club})
}

// List returns all clubs.
func (h *Handler) List(c *gin.Context) {
	clubs, err := h.clubService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list clubs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clubs": clubs})
}

// Update applies profile changes to the caller's own club.
func (h *Handler) Update(c *gin.Context) {
	user := auth.CurrentUser(c)
	clubID := c.Param("id")
	if user.ClubID != clubID {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot modify another club"})
		return
	}

	var body updateClubRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	club, err := h.clubService.Update(c.Request.Context(), clubID, &domain.UpdateClubRequest{
		Name:        body.Name,
		Description: body.Description,
		Logo:        body.Logo,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"club": club})
}

// AddMember appends one core-team member to the caller's own club.
func (h *Handler) AddMember(c *gin.Context) {
	user := auth.CurrentUser(c)
	clubID := c.Param("id")
	if user.ClubID != clubID {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot modify another club"})
		return
	}

	var body addMemberRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and designation are required"})
		return
	}

	club, err := h.clubService.AddCoreMember(c.Request.Context(), clubID, domain.ClubMember{
		Name:        body.Name,
		Designation: body.Designation,
		Photo:       body.Photo,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"club": club})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrClubNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "club not found"})
	case errors.Is(err, domain.ErrInvalidClub):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

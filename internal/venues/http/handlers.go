package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harshydv24/event-nexus-backend/internal/venues/domain"
)

// Catalog lists the venue catalog.
type Catalog interface {
	List(ctx context.Context) ([]domain.Venue, error)
}

type Handler struct {
	catalog Catalog
}

func New(catalog Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// List returns every venue with its capacity and availability.
func (h *Handler) List(c *gin.Context) {
	venues, err := h.catalog.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list venues"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"venues": venues})
}

// Register registers the venue routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/venues", h.List)
}

package groups

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikepea/entitled/pkg/entitled/httperr"
	"github.com/mikepea/entitled/pkg/entitled/models"
	"github.com/mikepea/entitled/pkg/entitled/store"
)

// Handler handles group-related requests
type Handler struct {
	store *store.Store
}

// NewHandler creates a new groups handler
func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// GroupResponse represents a group in API responses
type GroupResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ToResponse maps a group model to its wire shape.
func ToResponse(g models.Group) GroupResponse {
	return GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
	}
}

// ToResponses maps a slice of group models, never returning nil so the
// JSON renders [] rather than null.
func ToResponses(gs []models.Group) []GroupResponse {
	out := make([]GroupResponse, len(gs))
	for i, g := range gs {
		out[i] = ToResponse(g)
	}
	return out
}

// List returns all groups ordered by name
func (h *Handler) List(c *gin.Context) {
	gs, err := h.store.ListGroups()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, ToResponses(gs))
}

// RegisterRoutes registers group routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
}

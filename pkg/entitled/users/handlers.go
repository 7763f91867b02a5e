package users

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mikepea/entitled/pkg/entitled/groups"
	"github.com/mikepea/entitled/pkg/entitled/httperr"
	"github.com/mikepea/entitled/pkg/entitled/models"
	"github.com/mikepea/entitled/pkg/entitled/store"
)

const (
	// DefaultPageSize applies when the size query parameter is absent
	DefaultPageSize = 50
	// MaxPageSize is the largest accepted size query parameter
	MaxPageSize = 500
)

// Handler handles user-related requests
type Handler struct {
	store *store.Store
}

// NewHandler creates a new users handler
func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// GroupRef identifies a group by id in a create request
type GroupRef struct {
	ID string `json:"id" binding:"required"`
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Username    string     `json:"username" binding:"required"`
	Email       string     `json:"email" binding:"required"`
	DisplayName string     `json:"displayName" binding:"required"`
	Groups      []GroupRef `json:"groups"`
}

// UpdateUserRequest represents the request to update a user's active flag.
// IsActive is a pointer so "isActive": false is distinguishable from an
// absent field.
type UpdateUserRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// UserResponse represents a user in API responses. Field names are the
// camelCase wire aliases, distinct from the internal column names.
type UserResponse struct {
	ID          string                 `json:"id"`
	Username    string                 `json:"username"`
	Email       string                 `json:"email"`
	DisplayName string                 `json:"displayName"`
	IsActive    bool                   `json:"isActive"`
	Groups      []groups.GroupResponse `json:"groups"`
}

// PagedUsersResponse is the envelope for the paginated user listing
type PagedUsersResponse struct {
	Content       []UserResponse `json:"content"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	TotalElements int64          `json:"totalElements"`
	IsLastPage    bool           `json:"isLastPage"`
}

func (h *Handler) toResponse(user *models.User) (UserResponse, error) {
	gs, err := h.store.GroupsForUser(user.ID)
	if err != nil {
		return UserResponse{}, err
	}
	return UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		IsActive:    user.IsActive,
		Groups:      groups.ToResponses(gs),
	}, nil
}

// respondStoreError maps typed store outcomes to their wire envelopes.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrUsernameExists):
		httperr.Respond(c, httperr.UsernameExists())
	case errors.Is(err, store.ErrUserNotFound):
		httperr.Respond(c, httperr.UserNotFound())
	case errors.Is(err, store.ErrGroupNotFound):
		httperr.Respond(c, httperr.GroupNotFound())
	default:
		httperr.Respond(c, err)
	}
}

// Create creates a new user, optionally assigned to groups at create time
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.Invalid("Request validation failed"))
		return
	}

	groupIDs := make([]string, len(req.Groups))
	for i, g := range req.Groups {
		groupIDs[i] = g.ID
	}

	user, err := h.store.CreateUser(req.Username, req.Email, req.DisplayName, groupIDs)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	resp, err := h.toResponse(user)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List returns one page of users ordered by username
func (h *Handler) List(c *gin.Context) {
	page, err := parseQueryInt(c, "page", 0)
	if err != nil || page < 0 {
		httperr.Respond(c, httperr.Invalid("page must be an integer >= 0"))
		return
	}
	size, err := parseQueryInt(c, "size", DefaultPageSize)
	if err != nil || size < 1 || size > MaxPageSize {
		httperr.Respond(c, httperr.Invalid("size must be an integer between 1 and 500"))
		return
	}

	us, total, err := h.store.ListUsers(page, size)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	content := make([]UserResponse, len(us))
	for i := range us {
		resp, err := h.toResponse(&us[i])
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		content[i] = resp
	}

	c.JSON(http.StatusOK, PagedUsersResponse{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		IsLastPage:    int64((page+1)*size) >= total,
	})
}

// Get returns a specific user
func (h *Handler) Get(c *gin.Context) {
	user, err := h.store.GetUser(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	resp, err := h.toResponse(user)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update sets a user's active flag
func (h *Handler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.Invalid("Request validation failed"))
		return
	}

	user, err := h.store.UpdateUserActive(c.Param("id"), *req.IsActive)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	resp, err := h.toResponse(user)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete removes a user and all of its group memberships
func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.DeleteUser(c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseQueryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

// RegisterRoutes registers user routes, membership routes included
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/groups/:groupId", h.AddGroup)
	rg.DELETE("/:id/groups/:groupId", h.RemoveGroup)
}

package users

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AddGroup assigns a group to a user. Adding an existing assignment is a
// no-op; the user and the group must both exist.
func (h *Handler) AddGroup(c *gin.Context) {
	if err := h.store.AddMembership(c.Param("id"), c.Param("groupId")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveGroup removes a group assignment from a user. The assignment itself
// need not exist; removing an absent one silently succeeds.
func (h *Handler) RemoveGroup(c *gin.Context) {
	if err := h.store.RemoveMembership(c.Param("id"), c.Param("groupId")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

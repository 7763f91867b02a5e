package auth

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/mikepea/entitled/pkg/entitled/httperr"
)

// APIKeyMiddleware rejects any request whose configured header does not
// carry the pre-shared key. It runs before every handler, health included,
// so an unauthenticated request never touches the store.
func APIKeyMiddleware(header, key string) gin.HandlerFunc {
	expected := []byte(key)
	return func(c *gin.Context) {
		got := c.GetHeader(header)
		if got == "" {
			httperr.Abort(c, httperr.Unauthorized())
			return
		}
		// Constant-time compare; the key is a shared secret.
		if subtle.ConstantTimeCompare([]byte(got), expected) != 1 {
			httperr.Abort(c, httperr.Unauthorized())
			return
		}
		c.Next()
	}
}

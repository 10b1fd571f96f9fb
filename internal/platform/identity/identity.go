// Package identity carries the authenticated user of the current request.
// Handlers read it from the gin context instead of any process-wide state.
package identity

import "github.com/gin-gonic/gin"

const contextKey = "identity"

// Identity is the request-scoped view of the logged-in user.
type Identity struct {
	UserID    uint
	Nickname  string
	SessionID string
}

// Set stores the identity on the request context.
func Set(c *gin.Context, id Identity) {
	c.Set(contextKey, id)
}

// From returns the identity of the current request, if any.
func From(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// UserID returns the current user ID, or 0 for anonymous requests.
func UserID(c *gin.Context) uint {
	id, ok := From(c)
	if !ok {
		return 0
	}
	return id.UserID
}

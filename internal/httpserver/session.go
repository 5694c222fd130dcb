package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "storefront_session"
	sessionKey    = "sessionID"
)

// sessionMiddleware scopes each browser to a cart. A missing or malformed
// cookie gets a fresh uuid; the cart itself stays server-side.
func sessionMiddleware(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetCookie(sessionCookie, id, int(ttl.Seconds()), "/", "", false, true)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

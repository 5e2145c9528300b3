// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/config"
)

const sessionContextKey = "session_id"

// Session identifies the anonymous storefront session: it reads the session
// cookie and issues a fresh uuid cookie when none is present. Every cart,
// checkout and search operation is scoped to this identifier.
func Session(cfg *config.Config) gin.HandlerFunc {
	maxAge := int(cfg.Session.MaxAge.Seconds())

	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.Session.CookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(cfg.Session.CookieName, sessionID, maxAge, "/", "", false, true)
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the session identifier attached by the Session
// middleware
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}

package middleware

import (
	"net/http"

	"vitrine-backend/internal/shared/response"
	"vitrine-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the admin session cookie set on login.
const SessionCookieName = "vitrine_session"

// AuthMiddleware validates the admin session cookie and puts the claims into
// the gin context. Checked before any mutation is attempted.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired session")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// SetSessionCookie writes the HTTP-only, SameSite-Lax session cookie.
func SetSessionCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(jwt.SessionDuration.Seconds()), "/", "", secure, true)
}

// ClearSessionCookie removes the session cookie on logout.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

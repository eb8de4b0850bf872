package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tozoll/legal-ai-analyzer/internal/auth"
)

// ContextUsername is the gin context key set by RequireSession.
const ContextUsername = "username"

// RequireSession ensures the request carries a valid session cookie.
// It fails closed: missing, malformed or expired tokens all get the same 401.
func RequireSession(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Yetkisiz."})
			return
		}

		username, ok := sessions.Verify(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Geçersiz oturum."})
			return
		}

		c.Set(ContextUsername, username)
		c.Next()
	}
}

// Username returns the session identity set by RequireSession.
func Username(c *gin.Context) string {
	username, _ := c.Get(ContextUsername)
	s, _ := username.(string)
	return s
}

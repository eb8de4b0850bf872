package handlers

import (
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tozoll/legal-ai-analyzer/internal/auth"
	"github.com/tozoll/legal-ai-analyzer/internal/api/middleware"
	"github.com/tozoll/legal-ai-analyzer/internal/metrics"
	"github.com/tozoll/legal-ai-analyzer/internal/store"
)

// AuthHandler serves login, logout and identity lookups.
type AuthHandler struct {
	users         *store.UserStore
	sessions      *auth.Sessions
	secureCookies bool
}

func NewAuthHandler(users *store.UserStore, sessions *auth.Sessions, secureCookies bool) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, secureCookies: secureCookies}
}

// Login authenticates and sets the session cookie. Failures are uniform:
// same message and a 500-800ms randomized delay whether the username or the
// password was wrong, so usernames cannot be enumerated by timing.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Username == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Kullanıcı adı ve şifre gerekli."})
		return
	}

	username, ok := h.users.Verify(strings.TrimSpace(input.Username), input.Password)
	if !ok {
		metrics.LoginAttempts.WithLabelValues("failed").Inc()
		time.Sleep(time.Duration(500+rand.IntN(300)) * time.Millisecond)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Kullanıcı adı veya şifre hatalı."})
		return
	}

	token, err := h.sessions.Issue(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Giriş başarısız. Lütfen tekrar deneyin."})
		return
	}
	metrics.LoginAttempts.WithLabelValues("ok").Inc()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, int(auth.SessionTTL.Seconds()), "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "username": username})
}

// Me returns the identity of the current session.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"username": middleware.Username(c)})
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; there is no server-side revocation.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

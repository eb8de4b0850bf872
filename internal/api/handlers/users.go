package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tozoll/legal-ai-analyzer/internal/api/middleware"
	"github.com/tozoll/legal-ai-analyzer/internal/models"
	"github.com/tozoll/legal-ai-analyzer/internal/store"
)

var usernameCharset = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// UsersHandler serves the account management endpoints.
type UsersHandler struct {
	users *store.UserStore
}

func NewUsersHandler(users *store.UserStore) *UsersHandler {
	return &UsersHandler{users: users}
}

type userView struct {
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"createdAt"`
	Source    string     `json:"source"` // "env" or "db"
}

// List returns every account. Password hashes never leave the store layer.
func (h *UsersHandler) List(c *gin.Context) {
	all := h.users.ListAll()
	views := make([]userView, 0, len(all))
	for _, u := range all {
		view := userView{Username: u.Username, Role: u.Role, Source: "db"}
		if u.Protected {
			view.Source = "env"
		} else {
			createdAt := u.CreatedAt
			view.CreatedAt = &createdAt
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK, gin.H{"users": views})
}

// Create adds an account after validating the fields.
func (h *UsersHandler) Create(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek."})
		return
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Kullanıcı adı boş olamaz."})
		return
	}
	if len(input.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Şifre en az 6 karakter olmalıdır."})
		return
	}
	if !usernameCharset.MatchString(username) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Kullanıcı adı yalnızca harf, rakam, '_', '-' ve '.' içerebilir."})
		return
	}

	role := input.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleAdmin && role != models.RoleUser {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz rol."})
		return
	}

	if err := h.users.Create(username, input.Password, role); err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			c.JSON(http.StatusConflict, gin.H{"error": "Bu kullanıcı adı zaten mevcut."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Kullanıcı oluşturulamadı."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "username": username})
}

// Delete removes an account. Self-deletion and the environment admin are
// always refused.
func (h *UsersHandler) Delete(c *gin.Context) {
	username := c.Param("username")

	if strings.EqualFold(middleware.Username(c), username) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Kendi hesabınızı silemezsiniz."})
		return
	}

	if err := h.users.Delete(username); err != nil {
		switch {
		case errors.Is(err, store.ErrProtectedUser):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Sistem yöneticisi silinemez."})
		case errors.Is(err, store.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Kullanıcı bulunamadı."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Kullanıcı silinemedi."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

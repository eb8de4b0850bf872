package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tozoll/legal-ai-analyzer/internal/api/middleware"
	"github.com/tozoll/legal-ai-analyzer/internal/models"
	"github.com/tozoll/legal-ai-analyzer/internal/store"
)

// LogsHandler serves the audit log. Authorization lives here: a non-admin
// caller only ever receives their own entries.
type LogsHandler struct {
	logs  *store.LogStore
	users *store.UserStore
}

func NewLogsHandler(logs *store.LogStore, users *store.UserStore) *LogsHandler {
	return &LogsHandler{logs: logs, users: users}
}

// List returns audit entries, newest first. Admins (the environment admin or
// a stored account with the admin role) see everything and may filter by an
// explicit ?user= name; everyone else is scoped to themselves.
func (h *LogsHandler) List(c *gin.Context) {
	username := middleware.Username(c)

	isAdmin := false
	if u, ok := h.users.Find(username); ok {
		isAdmin = u.Role == models.RoleAdmin
	}

	var entries []models.LogEntry
	if isAdmin {
		if filter := c.Query("user"); filter != "" {
			entries = h.logs.ListByUser(filter)
		} else {
			entries = h.logs.ListAll()
		}
	} else {
		entries = h.logs.ListByUser(username)
	}

	c.JSON(http.StatusOK, gin.H{"logs": entries, "isAdmin": isAdmin})
}

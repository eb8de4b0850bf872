package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tozoll/legal-ai-analyzer/internal/auth"
	"github.com/tozoll/legal-ai-analyzer/internal/models"
)

var (
	ErrDuplicateUser = errors.New("username already exists")
	ErrProtectedUser = errors.New("cannot delete the environment admin")
	ErrUserNotFound  = errors.New("user not found")
)

// UserStore keeps accounts in a single JSON collection file. Every operation
// re-reads the file, mutates in memory and rewrites it whole; writes from
// concurrent requests are not serialized (accepted at this scale).
//
// The environment admin, when configured, is merged into Find/ListAll/Verify
// results as a protected, non-persisted user.
type UserStore struct {
	path              string
	adminUsername     string
	adminPasswordHash string
}

type userFile struct {
	Users []models.User `json:"users"`
}

func NewUserStore(path, adminUsername, adminPasswordHash string) *UserStore {
	return &UserStore{
		path:              path,
		adminUsername:     strings.TrimSpace(adminUsername),
		adminPasswordHash: adminPasswordHash,
	}
}

func (s *UserStore) envAdmin() (models.User, bool) {
	if s.adminUsername == "" || s.adminPasswordHash == "" {
		return models.User{}, false
	}
	return models.User{
		Username:     s.adminUsername,
		PasswordHash: s.adminPasswordHash,
		Role:         models.RoleAdmin,
		Protected:    true,
	}, true
}

func (s *UserStore) readAll() []models.User {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var db userFile
	if err := json.Unmarshal(raw, &db); err != nil {
		// A corrupt collection behaves like an empty one, matching the
		// tolerant reads of the rest of the system.
		return nil
	}
	return db.Users
}

func (s *UserStore) writeAll(users []models.User) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(userFile{Users: users}, "", "  ")
	if err != nil {
		return err
	}
	// Temp-file + rename so a crash mid-write cannot truncate the
	// collection. Concurrent writers can still lose an update.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Find looks a user up case-insensitively, checking the environment admin
// before the stored collection.
func (s *UserStore) Find(username string) (models.User, bool) {
	if admin, ok := s.envAdmin(); ok && strings.EqualFold(admin.Username, username) {
		return admin, true
	}
	for _, u := range s.readAll() {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return models.User{}, false
}

// Create adds a new account. The username collides case-insensitively with
// both stored users and the environment admin.
func (s *UserStore) Create(username, password, role string) error {
	if role == "" {
		role = models.RoleUser
	}
	if _, exists := s.Find(username); exists {
		return ErrDuplicateUser
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	users := append(s.readAll(), models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
	return s.writeAll(users)
}

// Delete removes a stored account. The environment admin is never deletable;
// self-deletion is the caller's check.
func (s *UserStore) Delete(username string) error {
	if admin, ok := s.envAdmin(); ok && strings.EqualFold(admin.Username, username) {
		return ErrProtectedUser
	}

	users := s.readAll()
	for i, u := range users {
		if strings.EqualFold(u.Username, username) {
			return s.writeAll(append(users[:i], users[i+1:]...))
		}
	}
	return ErrUserNotFound
}

// Verify checks credentials and returns the canonical username on success.
func (s *UserStore) Verify(username, password string) (string, bool) {
	u, ok := s.Find(username)
	if !ok {
		return "", false
	}
	if !auth.VerifyPassword(password, u.PasswordHash) {
		return "", false
	}
	return u.Username, true
}

// ListAll returns the environment admin (if configured) followed by the
// stored accounts. Callers must not expose the password hashes.
func (s *UserStore) ListAll() []models.User {
	var users []models.User
	if admin, ok := s.envAdmin(); ok {
		users = append(users, admin)
	}
	return append(users, s.readAll()...)
}

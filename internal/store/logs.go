package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/tozoll/legal-ai-analyzer/internal/models"
)

// LogStore is the append-only audit log, an ordered JSON array in one file.
// Append is a read-modify-write without locking: two concurrent analyses can
// drop one entry. Accepted for the expected write rate.
type LogStore struct {
	path string
}

func NewLogStore(path string) *LogStore {
	return &LogStore{path: path}
}

// NewLogID generates the id that keys a log entry and its archived upload.
func NewLogID() string {
	return uuid.NewString()
}

func (s *LogStore) readAll() []models.LogEntry {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var entries []models.LogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	return entries
}

func (s *LogStore) writeAll(entries []models.LogEntry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Append adds one entry to the collection.
func (s *LogStore) Append(entry models.LogEntry) error {
	return s.writeAll(append(s.readAll(), entry))
}

// ListAll returns every entry, newest first.
func (s *LogStore) ListAll() []models.LogEntry {
	entries := s.readAll()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	if entries == nil {
		entries = []models.LogEntry{}
	}
	return entries
}

// ListByUser filters ListAll case-insensitively by username.
func (s *LogStore) ListByUser(username string) []models.LogEntry {
	filtered := []models.LogEntry{}
	for _, e := range s.ListAll() {
		if strings.EqualFold(e.Username, username) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

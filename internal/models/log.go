package models

import "time"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// LogEntry is one immutable audit record of an analysis attempt.
// Entries are appended to logs.json and never mutated or deleted.
type LogEntry struct {
	ID                  string    `json:"id"`
	Username            string    `json:"username"`
	Filename            string    `json:"filename"`
	FileSize            int64     `json:"fileSize"`
	Party               *string   `json:"party"`
	Timestamp           time.Time `json:"timestamp"`
	Status              string    `json:"status"`
	ErrorMessage        string    `json:"errorMessage,omitempty"`
	ContractArchivePath string    `json:"contractArchivePath,omitempty"`
}

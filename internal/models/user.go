package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"` // base64-wrapped bcrypt hash
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`

	// Protected marks the environment-defined admin: it is never persisted
	// to users.json, cannot be deleted and its name cannot be reused.
	Protected bool `json:"-"`
}

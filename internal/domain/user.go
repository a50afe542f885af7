package domain

import "time"

// User is the domain entity for a registered account.
// Email is the sole login identifier and the subject of issued tokens.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
}

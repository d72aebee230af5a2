package domain

import "time"

// User is a registered account. Username is unique and never changes.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

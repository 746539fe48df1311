package domain

import "time"

// User is a staff account behind the login screen.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" validate:"required"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

package domain

import (
	"strings"
	"time"
)

type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

type Client struct {
	ID        int64        `json:"id"`
	FirstName string       `json:"first_name" validate:"required"`
	LastName  string       `json:"last_name" validate:"required"`
	DNI       string       `json:"dni" validate:"required"`
	Email     string       `json:"email,omitempty"`
	Phone     string       `json:"phone,omitempty"`
	JoinedAt  string       `json:"joined_at"`
	Status    ClientStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// FullName returns "First Last" with surrounding whitespace trimmed.
func (c Client) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

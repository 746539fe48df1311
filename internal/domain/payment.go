package domain

import "time"

// Payment is one monthly membership due for a client. Month is "YYYY-MM".
type Payment struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"client_id" validate:"required"`
	Month       string    `json:"month" validate:"required"`
	GeneratedAt string    `json:"generated_at"`
	Paid        bool      `json:"paid"`
	PaidAt      *string   `json:"paid_at,omitempty"`
	Fee         float64   `json:"fee"`
	Method      string    `json:"method,omitempty"`
	Concept     string    `json:"concept,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// CanTransitionTo reports whether a stored status may move to next.
// Nothing leaves cancelled.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingCancelled
	default:
		return false
	}
}

// Booking reserves one piece of equipment for a half-open [start, end)
// interval on a calendar date. Date and times are kept as the strings
// the store holds ("2006-01-02" and "15:04"); HH:MM strings compare
// chronologically as plain strings.
type Booking struct {
	ID          int64         `json:"id"`
	ClientID    int64         `json:"client_id" validate:"required"`
	EquipmentID int64         `json:"equipment_id" validate:"required"`
	Date        string        `json:"date" validate:"required"`
	StartTime   string        `json:"start_time" validate:"required"`
	EndTime     string        `json:"end_time"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	Client    *Client    `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Equipment *Equipment `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID"`
}

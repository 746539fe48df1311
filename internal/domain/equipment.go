package domain

import "time"

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "available"
	EquipmentMaintenance EquipmentStatus = "maintenance"
	EquipmentRetired     EquipmentStatus = "retired"
)

type Equipment struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Status      EquipmentStatus `json:"status"`
	Description string          `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

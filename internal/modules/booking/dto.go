package booking

type CreateBookingRequest struct {
	ClientID    int64  `json:"client_id" binding:"required"`
	EquipmentID int64  `json:"equipment_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	Status      string `json:"status"`
}

// UpdateBookingRequest carries only the fields the caller wants to
// change; nil means "leave as stored".
type UpdateBookingRequest struct {
	ClientID    *int64  `json:"client_id"`
	EquipmentID *int64  `json:"equipment_id"`
	Date        *string `json:"date"`
	StartTime   *string `json:"start_time"`
	Status      *string `json:"status"`
}

type ReportSlot struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	Minutes    int    `json:"minutes"`
	ClientName string `json:"client_name"`
}

type EquipmentDayReport struct {
	EquipmentID     int64        `json:"equipment_id"`
	EquipmentName   string       `json:"equipment_name"`
	AvailableAllDay bool         `json:"available_all_day"`
	Slots           []ReportSlot `json:"slots"`
}

type DayReport struct {
	Date        string               `json:"date"`
	DateDisplay string               `json:"date_display"`
	Equipment   []EquipmentDayReport `json:"equipment"`
}

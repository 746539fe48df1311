package equipment

type CreateEquipmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

type UpdateEquipmentRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
}

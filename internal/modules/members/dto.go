package members

type CreateClientRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	DNI       string `json:"dni" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type UpdateClientRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	DNI       *string `json:"dni"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Status    *string `json:"status"`
}

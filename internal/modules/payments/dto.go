package payments

type GenerateMonthlyRequest struct {
	Month string `json:"month" binding:"required"`
}

type MarkPaidRequest struct {
	PaidAt  string `json:"paid_at" binding:"required"`
	Method  string `json:"method" binding:"required"`
	Concept string `json:"concept"`
}

type CreatePaymentRequest struct {
	ClientID int64  `json:"client_id" binding:"required"`
	Month    string `json:"month" binding:"required"`
	PaidAt   string `json:"paid_at" binding:"required"`
	Method   string `json:"method" binding:"required"`
	Concept  string `json:"concept"`
}

type PaymentView struct {
	ID           int64   `json:"id"`
	ClientID     int64   `json:"client_id"`
	Month        string  `json:"month"`
	GeneratedAt  string  `json:"generated_at"`
	Paid         bool    `json:"paid"`
	PaidAt       *string `json:"paid_at,omitempty"`
	Fee          float64 `json:"fee"`
	FeeFormatted string  `json:"fee_formatted"`
	Method       string  `json:"method,omitempty"`
	Concept      string  `json:"concept,omitempty"`
}

package models

type TransactionType string

const (
	CardNotPresent TransactionType = "Card-Not-Present"
	CardPresent    TransactionType = "Card-Present"
)

func (t TransactionType) Valid() bool {
	switch t {
	case CardNotPresent, CardPresent:
		return true
	}
	return false
}

// AlertRequest is the transaction alert posted to the TAMS analyze endpoint.
// Amount is a pointer so a missing or null amount is not read as 0.
type AlertRequest struct {
	Timestamp       string          `json:"timestamp" validate:"required"`
	Merchant        string          `json:"merchant"`
	Amount          *float64        `json:"amount" validate:"required,gte=0"`
	TransactionType TransactionType `json:"transaction_type" validate:"required,oneof=Card-Not-Present Card-Present"`
	UserID          string          `json:"user_id"`
	AlertID         string          `json:"alert_id,omitempty"`
}

// AmountOf returns a pointer suitable for AlertRequest.Amount.
func AmountOf(v float64) *float64 {
	return &v
}

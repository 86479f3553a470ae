package request

import "github.com/google/uuid"

type ProcessPaymentRequest struct {
	BookingID     uuid.UUID `json:"booking_id" binding:"required"`
	PaymentMethod string    `json:"payment_method" binding:"required"`
	Amount        *float64  `json:"amount" binding:"required"`
}

// GetAmount unwraps the bound amount. The field is a pointer so that
// binding can tell an absent amount from a legitimate zero.
func (r ProcessPaymentRequest) GetAmount() float64 {
	if r.Amount == nil {
		return 0
	}
	return *r.Amount
}

package response

import (
	"cinebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingConfirmationResponse struct {
	Movie     string   `json:"movie"`
	Theater   string   `json:"theater"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Seats     []string `json:"seats"`
	TotalPaid float64  `json:"total_paid"`
}

type PaymentResponse struct {
	PaymentID     uuid.UUID                   `json:"payment_id"`
	PaymentStatus string                      `json:"payment_status"`
	BookingID     uuid.UUID                   `json:"booking_id"`
	ReceiptURL    string                      `json:"receipt_url"`
	Confirmation  BookingConfirmationResponse `json:"confirmation"`
}

func FromPaymentView(rm *queries.PaymentView) *PaymentResponse {
	resp := &PaymentResponse{}
	_ = copier.Copy(resp, rm)
	if resp.Confirmation.Seats == nil {
		resp.Confirmation.Seats = []string{}
	}
	return resp
}

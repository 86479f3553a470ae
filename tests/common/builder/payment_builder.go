//go:build unit || e2e

package builder

import (
	"time"

	dompayment "cinebook/internal/domain/payment"
	reqdto "cinebook/internal/handler/dto/request"
	"cinebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentBuilder struct {
	PaymentID     uuid.UUID
	BookingID     uuid.UUID
	Amount        float64
	PaymentMethod string
	Movie         string
	Theater       string
	Date          string
	Time          string
	Seats         []string
	CreatedAt     time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		PaymentID:     uuid.New(),
		BookingID:     uuid.New(),
		Amount:        30.00,
		PaymentMethod: "card",
		Movie:         "Starfall Protocol",
		Theater:       "Cinebook Downtown 12",
		Date:          "2025-10-28",
		Time:          "19:30",
		Seats:         []string{"A5", "A6"},
		CreatedAt:     time.Date(2025, 10, 27, 12, 5, 0, 0, time.UTC),
	}
}

func (p *PaymentBuilder) BuildDomain() (*dompayment.Payment, error) {
	return dompayment.NewPayment(p.PaymentID, p.BookingID, p.Amount, p.Amount, p.PaymentMethod, p.CreatedAt)
}

func (p *PaymentBuilder) BuildProcessRequestDTO() reqdto.ProcessPaymentRequest {
	amount := p.Amount
	return reqdto.ProcessPaymentRequest{
		BookingID:     p.BookingID,
		PaymentMethod: p.PaymentMethod,
		Amount:        &amount,
	}
}

func (p *PaymentBuilder) BuildViewQuery() *queries.PaymentView {
	return &queries.PaymentView{
		PaymentID:     p.PaymentID,
		PaymentStatus: dompayment.StatusSuccess.String(),
		BookingID:     p.BookingID,
		ReceiptURL:    "https://cinebook.example.com/receipts/" + p.PaymentID.String(),
		Confirmation: queries.BookingConfirmation{
			Movie:     p.Movie,
			Theater:   p.Theater,
			Date:      p.Date,
			Time:      p.Time,
			Seats:     p.Seats,
			TotalPaid: p.Amount,
		},
	}
}

// Fluent builder methods
func (p *PaymentBuilder) WithBookingID(bookingID uuid.UUID) *PaymentBuilder {
	p.BookingID = bookingID
	return p
}

func (p *PaymentBuilder) WithAmount(amount float64) *PaymentBuilder {
	p.Amount = amount
	return p
}

func (p *PaymentBuilder) WithPaymentMethod(method string) *PaymentBuilder {
	p.PaymentMethod = method
	return p
}

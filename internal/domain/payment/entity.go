package payment

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyMethod    = errors.New("payment method cannot be empty")
	ErrAmountMismatch = errors.New("amount does not match booking total")
)

// receiptBaseURL is the prefix of the deterministic receipt reference
// derived from the payment identifier.
const receiptBaseURL = "https://cinebook.example.com/receipts/"

// Payment records one settlement of a booking. The mock settlement path
// only ever produces success records: every validation failure is
// rejected before a Payment exists.
type Payment struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	amount     float64
	method     string
	status     Status
	receiptURL string
	createdAt  time.Time
}

// NewPayment creates a successful payment for bookingID. The caller has
// already verified the booking is pending; this factory only validates
// the attempt itself (method present, amount within tolerance of total).
func NewPayment(id, bookingID uuid.UUID, amount, bookingTotal float64, method string, now time.Time) (*Payment, error) {
	if method == "" {
		return nil, ErrEmptyMethod
	}
	if !AmountMatches(amount, bookingTotal) {
		return nil, ErrAmountMismatch
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Payment{
		id:         id,
		bookingID:  bookingID,
		amount:     amount,
		method:     method,
		status:     StatusSuccess,
		receiptURL: receiptBaseURL + id.String(),
		createdAt:  now,
	}, nil
}

// AmountMatches reports whether got equals want within AmountTolerance.
func AmountMatches(got, want float64) bool {
	return math.Abs(got-want) <= AmountTolerance
}

// MismatchMessage formats the rejection text for an amount mismatch,
// naming expected vs received.
func MismatchMessage(expected, got float64) string {
	return fmt.Sprintf("Amount mismatch. Expected $%.2f, got $%.2f", expected, got)
}

func (p *Payment) ID() uuid.UUID        { return p.id }
func (p *Payment) BookingID() uuid.UUID { return p.bookingID }
func (p *Payment) Amount() float64      { return p.amount }
func (p *Payment) Method() string       { return p.method }
func (p *Payment) Status() Status       { return p.status }
func (p *Payment) ReceiptURL() string   { return p.receiptURL }
func (p *Payment) CreatedAt() time.Time { return p.createdAt }

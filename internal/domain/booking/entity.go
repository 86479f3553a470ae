package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptySeats    = errors.New("seat list cannot be empty")
	ErrEmptyUserID   = errors.New("user id cannot be empty")
	ErrEmptyShowtime = errors.New("showtime id cannot be empty")
	ErrNotPending    = errors.New("booking is not pending")
	ErrAlreadyFinal  = errors.New("booking is already in a final state")
)

// Booking is a request to hold a specific set of seats for a showtime.
// The seat list and total price are fixed at creation; only the status
// changes afterwards, and only through Confirm/Cancel.
type Booking struct {
	id         uuid.UUID
	showtimeID string
	seats      []string
	userID     string
	status     Status
	totalPrice float64
	createdAt  time.Time
}

func NewBooking(id uuid.UUID, showtimeID string, seats []string, userID string, totalPrice float64, now time.Time) (*Booking, error) {
	if showtimeID == "" {
		return nil, ErrEmptyShowtime
	}
	if len(seats) == 0 {
		return nil, ErrEmptySeats
	}
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	// Own the slice so later caller mutations cannot leak in.
	owned := make([]string, len(seats))
	copy(owned, seats)

	return &Booking{
		id:         id,
		showtimeID: showtimeID,
		seats:      owned,
		userID:     userID,
		status:     StatusPending,
		totalPrice: totalPrice,
		createdAt:  now,
	}, nil
}

// Reconstruct rebuilds a booking from stored state without re-running
// creation validation.
func Reconstruct(id uuid.UUID, showtimeID string, seats []string, userID string, status Status, totalPrice float64, createdAt time.Time) *Booking {
	owned := make([]string, len(seats))
	copy(owned, seats)
	return &Booking{
		id:         id,
		showtimeID: showtimeID,
		seats:      owned,
		userID:     userID,
		status:     status,
		totalPrice: totalPrice,
		createdAt:  createdAt,
	}
}

// Confirm performs the single pending→confirmed transition.
func (b *Booking) Confirm() error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusConfirmed
	return nil
}

// Cancel releases a booking that has not been confirmed yet.
func (b *Booking) Cancel() error {
	if b.status != StatusPending {
		return ErrAlreadyFinal
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsPending() bool   { return b.status == StatusPending }
func (b *Booking) IsConfirmed() bool { return b.status == StatusConfirmed }

func (b *Booking) ID() uuid.UUID       { return b.id }
func (b *Booking) ShowtimeID() string  { return b.showtimeID }
func (b *Booking) UserID() string      { return b.userID }
func (b *Booking) Status() Status      { return b.status }
func (b *Booking) TotalPrice() float64 { return b.totalPrice }
func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

// Seats returns a copy of the requested seat identifiers in request order.
func (b *Booking) Seats() []string {
	out := make([]string, len(b.seats))
	copy(out, b.seats)
	return out
}

package commands

import (
	"cinebook/internal/domain/booking"
	domcatalog "cinebook/internal/domain/catalog"
	"cinebook/internal/domain/payment"

	"github.com/google/uuid"
)

// Write-side ports. The ledgers are in-memory process singletons, so
// their methods carry no context: nothing blocks and nothing is
// cancellable mid-write (the whole commit happens under a lock).

// BookingLedger owns the authoritative booking set.
type BookingLedger interface {
	// LockShowtime serializes the validate→commit sequence for one
	// showtime; the returned func releases the lock.
	LockShowtime(showtimeID string) func()
	Create(b *booking.Booking) error
	FindByID(id uuid.UUID) (*booking.Booking, error)
	ConfirmedSeats(showtimeID string) map[string]struct{}
	Confirm(id uuid.UUID) error
}

// PaymentLedger owns the authoritative payment set.
type PaymentLedger interface {
	Create(p *payment.Payment) error
}

// CatalogReadStore is the slice of the reference catalog the write side
// needs: showtime existence and seat layouts with unit prices.
type CatalogReadStore interface {
	ShowtimeByID(id string) (domcatalog.Showtime, error)
	SeatsByShowtimeID(id string) ([]domcatalog.SeatSlot, error)
}

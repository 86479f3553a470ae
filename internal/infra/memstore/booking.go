// Package memstore holds the authoritative in-memory ledgers. State lives
// for the process lifetime; all mutation goes through the store methods.
package memstore

import (
	"sync"

	"cinebook/internal/domain/booking"
	"cinebook/internal/infra"

	"github.com/google/uuid"
)

// BookingStore is the booking ledger. Map access is guarded by mu;
// the per-showtime mutexes serialize the whole
// read-availability→validate→commit sequence for one showtime so that
// overlapping reserves cannot both succeed.
type BookingStore struct {
	mu         sync.RWMutex
	bookings   map[uuid.UUID]*booking.Booking
	byShowtime map[string][]uuid.UUID

	lockMu        sync.Mutex
	showtimeLocks map[string]*sync.Mutex
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		bookings:      make(map[uuid.UUID]*booking.Booking),
		byShowtime:    make(map[string][]uuid.UUID),
		showtimeLocks: make(map[string]*sync.Mutex),
	}
}

// LockShowtime acquires the single-writer lock for a showtime and
// returns the release function.
func (s *BookingStore) LockShowtime(showtimeID string) func() {
	s.lockMu.Lock()
	l, ok := s.showtimeLocks[showtimeID]
	if !ok {
		l = &sync.Mutex{}
		s.showtimeLocks[showtimeID] = l
	}
	s.lockMu.Unlock()

	l.Lock()
	return l.Unlock
}

// Create inserts a new booking record.
func (s *BookingStore) Create(b *booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bookings[b.ID()]; exists {
		return infra.WrapRepoErr("booking already exists", nil, infra.KindDuplicateKey)
	}

	s.bookings[b.ID()] = clone(b)
	s.byShowtime[b.ShowtimeID()] = append(s.byShowtime[b.ShowtimeID()], b.ID())
	return nil
}

// FindByID returns a copy of the booking.
func (s *BookingStore) FindByID(id uuid.UUID) (*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return clone(b), nil
}

// ConfirmedSeats reports every seat identifier held by a confirmed
// booking for the showtime. Pending and cancelled bookings never block
// a seat.
func (s *BookingStore) ConfirmedSeats(showtimeID string) map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	taken := make(map[string]struct{})
	for _, id := range s.byShowtime[showtimeID] {
		b := s.bookings[id]
		if !b.IsConfirmed() {
			continue
		}
		for _, seat := range b.Seats() {
			taken[seat] = struct{}{}
		}
	}
	return taken
}

// Confirm performs exactly one pending→confirmed transition.
func (s *BookingStore) Confirm(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if err := b.Confirm(); err != nil {
		return infra.WrapRepoErr("booking is not pending", err, infra.KindInvalidState)
	}
	return nil
}

// Count returns the number of bookings in the ledger (for testing).
func (s *BookingStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}

func clone(b *booking.Booking) *booking.Booking {
	return booking.Reconstruct(b.ID(), b.ShowtimeID(), b.Seats(), b.UserID(), b.Status(), b.TotalPrice(), b.CreatedAt())
}

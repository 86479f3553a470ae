package memstore

import (
	"sync"

	"cinebook/internal/domain/payment"
	"cinebook/internal/infra"

	"github.com/google/uuid"
)

// PaymentStore is the payment ledger. At most one payment may reference
// a booking; Create enforces that invariant.
type PaymentStore struct {
	mu        sync.RWMutex
	payments  map[uuid.UUID]*payment.Payment
	byBooking map[uuid.UUID]uuid.UUID
}

func NewPaymentStore() *PaymentStore {
	return &PaymentStore{
		payments:  make(map[uuid.UUID]*payment.Payment),
		byBooking: make(map[uuid.UUID]uuid.UUID),
	}
}

func (s *PaymentStore) Create(p *payment.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.payments[p.ID()]; exists {
		return infra.WrapRepoErr("payment already exists", nil, infra.KindDuplicateKey)
	}
	if _, exists := s.byBooking[p.BookingID()]; exists {
		return infra.WrapRepoErr("booking already paid", nil, infra.KindConflict)
	}

	s.payments[p.ID()] = p
	s.byBooking[p.BookingID()] = p.ID()
	return nil
}

func (s *PaymentStore) FindByID(id uuid.UUID) (*payment.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.payments[id]
	if !ok {
		return nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return p, nil
}

func (s *PaymentStore) FindByBookingID(bookingID uuid.UUID) (*payment.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byBooking[bookingID]
	if !ok {
		return nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return s.payments[id], nil
}

// Count returns the number of payments in the ledger (for testing).
func (s *PaymentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.payments)
}

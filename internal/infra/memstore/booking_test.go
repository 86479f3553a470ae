//go:build unit

package memstore_test

import (
	"sync"
	"testing"
	"time"

	"cinebook/internal/domain/booking"
	"cinebook/internal/infra"
	"cinebook/internal/infra/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking(t *testing.T, showtimeID string, seats ...string) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(uuid.Nil, showtimeID, seats, "u1", float64(len(seats))*15.00, time.Now())
	require.NoError(t, err)
	return b
}

func TestBookingStore_CreateAndFind(t *testing.T) {
	store := memstore.NewBookingStore()
	b := newBooking(t, "st001", "A5", "A6")

	require.NoError(t, store.Create(b))
	assert.Equal(t, 1, store.Count())

	got, err := store.FindByID(b.ID())
	require.NoError(t, err)
	assert.Equal(t, b.ID(), got.ID())
	assert.Equal(t, []string{"A5", "A6"}, got.Seats())
	assert.True(t, got.IsPending())
}

func TestBookingStore_CreateDuplicate(t *testing.T) {
	store := memstore.NewBookingStore()
	b := newBooking(t, "st001", "A5")

	require.NoError(t, store.Create(b))
	err := store.Create(b)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func TestBookingStore_FindByIDNotFound(t *testing.T) {
	store := memstore.NewBookingStore()

	_, err := store.FindByID(uuid.New())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestBookingStore_FindReturnsCopy(t *testing.T) {
	store := memstore.NewBookingStore()
	b := newBooking(t, "st001", "A5")
	require.NoError(t, store.Create(b))

	got, err := store.FindByID(b.ID())
	require.NoError(t, err)
	require.NoError(t, got.Confirm())

	// mutating the returned record must not leak into the ledger
	again, err := store.FindByID(b.ID())
	require.NoError(t, err)
	assert.True(t, again.IsPending())
}

func TestBookingStore_ConfirmedSeats(t *testing.T) {
	store := memstore.NewBookingStore()

	pending := newBooking(t, "st001", "A1", "A2")
	confirmed := newBooking(t, "st001", "B1", "B2")
	otherShowtime := newBooking(t, "st002", "C1")

	require.NoError(t, store.Create(pending))
	require.NoError(t, store.Create(confirmed))
	require.NoError(t, store.Create(otherShowtime))
	require.NoError(t, store.Confirm(confirmed.ID()))
	require.NoError(t, store.Confirm(otherShowtime.ID()))

	taken := store.ConfirmedSeats("st001")

	// only confirmed bookings of the same showtime block seats
	assert.Equal(t, map[string]struct{}{"B1": {}, "B2": {}}, taken)
}

func TestBookingStore_Confirm(t *testing.T) {
	store := memstore.NewBookingStore()
	b := newBooking(t, "st001", "A5")
	require.NoError(t, store.Create(b))

	require.NoError(t, store.Confirm(b.ID()))

	got, err := store.FindByID(b.ID())
	require.NoError(t, err)
	assert.True(t, got.IsConfirmed())

	err = store.Confirm(b.ID())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindInvalidState))

	err = store.Confirm(uuid.New())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

// Two goroutines race on overlapping seats; the showtime lock must let
// exactly one of them observe the seat as free and commit.
func TestBookingStore_LockShowtimeSerializesCommit(t *testing.T) {
	store := memstore.NewBookingStore()

	reserve := func(seat string) bool {
		unlock := store.LockShowtime("st001")
		defer unlock()

		if _, taken := store.ConfirmedSeats("st001")[seat]; taken {
			return false
		}
		b := newBooking(t, "st001", seat)
		if err := store.Create(b); err != nil {
			return false
		}
		return store.Confirm(b.ID()) == nil
	}

	const attempts = 50
	results := make([]bool, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = reserve("A5")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, ok := range results {
		if ok {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one overlapping reserve may win")
}

func TestBookingStore_LocksAreIndependentAcrossShowtimes(t *testing.T) {
	store := memstore.NewBookingStore()

	unlock1 := store.LockShowtime("st001")
	defer unlock1()

	done := make(chan struct{})
	go func() {
		unlock2 := store.LockShowtime("st002")
		unlock2()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("st002 lock blocked by st001 lock")
	}
}

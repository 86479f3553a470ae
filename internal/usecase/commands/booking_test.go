//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "cinebook/internal/handler/dto/request"
	infracatalog "cinebook/internal/infra/catalog"
	"cinebook/internal/infra/memstore"
	"cinebook/internal/pkg/clock"
	"cinebook/internal/pkg/config"
	"cinebook/internal/pkg/errs"
	"cinebook/internal/usecase/commands"
	"cinebook/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture wires the real catalog and ledgers together, the same shape
// the application assembles at startup.
type fixture struct {
	bookings *memstore.BookingStore
	payments *memstore.PaymentStore
	clock    *clock.MockClock

	bookingCommands commands.BookingCommands
	paymentCommands commands.PaymentCommands
	bookingQueries  queries.BookingQueries
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	catalogStore, err := infracatalog.NewStore(config.CatalogConfig{})
	require.NoError(t, err)

	bookings := memstore.NewBookingStore()
	payments := memstore.NewPaymentStore()
	mockClock := clock.NewMockClock(time.Date(2025, 10, 27, 12, 0, 0, 0, time.UTC))

	bookingQueries := queries.NewBookingQueries(bookings, catalogStore)

	return &fixture{
		bookings:        bookings,
		payments:        payments,
		clock:           mockClock,
		bookingCommands: commands.NewBookingCommands(bookings, catalogStore, bookingQueries, mockClock),
		paymentCommands: commands.NewPaymentCommands(bookings, payments, bookingQueries, mockClock),
		bookingQueries:  bookingQueries,
	}
}

func bookRequest(showtimeID string, seats []string, userID string) reqdto.BookSeatsRequest {
	return reqdto.BookSeatsRequest{
		ShowtimeID: showtimeID,
		Seats:      seats,
		UserID:     userID,
	}
}

func TestReserve(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending booking with the summed seat price", func(t *testing.T) {
		f := newFixture(t)

		view, err := f.bookingCommands.Reserve(ctx, bookRequest("st001", []string{"A5", "A6"}, "u1"))
		require.NoError(t, err)

		assert.Equal(t, "pending", view.Status)
		assert.Equal(t, []string{"A5", "A6"}, view.Seats)
		assert.Equal(t, "u1", view.UserID)
		assert.InDelta(t, 30.00, view.TotalPrice, 0.001)
		assert.Equal(t, "Starfall Protocol", view.Movie)
		assert.Equal(t, "Cinebook Downtown 12", view.Theater)
		assert.Equal(t, "2025-10-28", view.Date)
		assert.Equal(t, "19:30", view.Time)
		assert.Equal(t, f.clock.Now(), view.CreatedAt)
		assert.Equal(t, 1, f.bookings.Count())
	})

	t.Run("missing seat price falls back to the default", func(t *testing.T) {
		f := newFixture(t)

		// st002 standard seats carry no price in the fixtures
		view, err := f.bookingCommands.Reserve(ctx, bookRequest("st002", []string{"A1"}, "u1"))
		require.NoError(t, err)
		assert.InDelta(t, 15.00, view.TotalPrice, 0.001)
	})

	t.Run("unknown showtime", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.bookingCommands.Reserve(ctx, bookRequest("st999", []string{"A5"}, "u1"))
		assert.ErrorIs(t, err, errs.ErrShowtimeNotFound)
		assert.Equal(t, 0, f.bookings.Count())
	})

	t.Run("empty seat list and empty user are rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.bookingCommands.Reserve(ctx, bookRequest("st001", nil, "u1"))
		assert.ErrorIs(t, err, errs.ErrEmptySeatList)

		_, err = f.bookingCommands.Reserve(ctx, bookRequest("st001", []string{"A5"}, ""))
		assert.ErrorIs(t, err, errs.ErrEmptyUserID)

		assert.Equal(t, 0, f.bookings.Count())
	})

	t.Run("nonexistent seat rejects the whole request", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.bookingCommands.Reserve(ctx, bookRequest("st001", []string{"Z99"}, "u1"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrSeatsUnavailable)
		assert.Equal(t, "Unavailable seats: Z99 (doesn't exist)", err.Error())
		assert.Equal(t, 0, f.bookings.Count())
	})

	t.Run("already booked seat rejects the whole request", func(t *testing.T) {
		f := newFixture(t)

		first, err := f.bookingCommands.Reserve(ctx, bookRequest("st001", []string{"A5", "A6"}, "u1"))
		require.NoError(t, err)
		settle(t, f, first.BookingID, first.TotalPrice)

		_, err = f.bookingCommands.Reserve(ctx, bookRequest("st001", []string{"A5"}, "u2"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrSeatsUnavailable)
		assert.Equal(t, "Unavailable seats: A5 (already booked)", err.Error())
	})

	t.Run("all failing seats are accumulated, not just the first", func(t *testing.T) {
		f := newFixture(t)

		first, err := f.bookingCommands.Reserve(ctx, bookRequest("st001", []string{"A5"}, "u1"))
		require.NoError(t, err)
		settle(t, f, first.BookingID, first.TotalPrice)

		_, err = f.bookingCommands.Reserve(ctx, bookRequest("st001", []string{"A5", "Z99", "A6"}, "u2"))
		require.Error(t, err)
		assert.Equal(t, "Unavailable seats: A5 (already booked), Z99 (doesn't exist)", err.Error())
		assert.Equal(t, 1, f.bookings.Count())
	})

	t.Run("pending bookings never block a seat", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.bookingCommands.Reserve(ctx, bookRequest("st001", []string{"A5"}, "u1"))
		require.NoError(t, err)

		// the first booking was never settled, so the seat stays free
		view, err := f.bookingCommands.Reserve(ctx, bookRequest("st001", []string{"A5"}, "u2"))
		require.NoError(t, err)
		assert.Equal(t, "pending", view.Status)
		assert.Equal(t, 2, f.bookings.Count())
	})
}

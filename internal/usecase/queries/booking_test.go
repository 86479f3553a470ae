//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"cinebook/internal/domain/booking"
	domcatalog "cinebook/internal/domain/catalog"
	"cinebook/internal/infra"
	"cinebook/internal/pkg/errs"
	"cinebook/internal/usecase/queries"
	queriesmock "cinebook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := queriesmock.NewMockBookingReader(ctrl)
	catalogStore := queriesmock.NewMockCatalogReadStore(ctrl)
	q := queries.NewBookingQueries(reader, catalogStore)

	id := uuid.New()
	createdAt := time.Date(2025, 10, 27, 12, 0, 0, 0, time.UTC)
	record := booking.Reconstruct(id, "st001", []string{"A5", "A6"}, "u1", booking.StatusPending, 30.00, createdAt)

	t.Run("joins showtime details into the view", func(t *testing.T) {
		reader.EXPECT().FindByID(id).Return(record, nil)
		catalogStore.EXPECT().ShowtimeByID("st001").
			Return(domcatalog.Showtime{ShowtimeID: "st001", MovieID: "mv001", TheaterID: "th001", Date: "2025-10-28", Time: "19:30"}, nil)
		catalogStore.EXPECT().MovieByID("mv001").Return(domcatalog.Movie{Title: "Starfall Protocol"}, nil)
		catalogStore.EXPECT().TheaterByID("th001").Return(domcatalog.Theater{Name: "Cinebook Downtown 12"}, nil)

		view, err := q.GetByID(context.Background(), id)
		require.NoError(t, err)

		assert.Equal(t, id, view.BookingID)
		assert.Equal(t, "pending", view.Status)
		assert.Equal(t, "Starfall Protocol", view.Movie)
		assert.Equal(t, "Cinebook Downtown 12", view.Theater)
		assert.Equal(t, "2025-10-28", view.Date)
		assert.Equal(t, "19:30", view.Time)
		assert.Equal(t, []string{"A5", "A6"}, view.Seats)
		assert.Equal(t, "u1", view.UserID)
		assert.InDelta(t, 30.00, view.TotalPrice, 0.001)
		assert.Equal(t, createdAt, view.CreatedAt)
	})

	t.Run("unknown booking fails with not found", func(t *testing.T) {
		missing := uuid.New()
		reader.EXPECT().FindByID(missing).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := q.GetByID(context.Background(), missing)
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("dangling showtime still yields the booking core", func(t *testing.T) {
		reader.EXPECT().FindByID(id).Return(record, nil)
		catalogStore.EXPECT().ShowtimeByID("st001").
			Return(domcatalog.Showtime{}, infra.WrapRepoErr("showtime not found", nil, infra.KindNotFound))

		view, err := q.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Unknown", view.Movie)
		assert.Equal(t, "Unknown Theater", view.Theater)
		assert.Equal(t, []string{"A5", "A6"}, view.Seats)
	})
}

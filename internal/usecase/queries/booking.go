package queries

import (
	"context"

	"cinebook/internal/domain/booking"
	"cinebook/internal/infra"
	"cinebook/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingReader is the read surface of the booking ledger.
type BookingReader interface {
	FindByID(id uuid.UUID) (*booking.Booking, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReader
	catalog  CatalogReadStore
}

func NewBookingQueries(bookings BookingReader, catalog CatalogReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, catalog: catalog}
}

func (q *bookingQueriesImpl) GetByID(_ context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.bookings.FindByID(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return q.toView(b), nil
}

func (q *bookingQueriesImpl) toView(b *booking.Booking) *BookingView {
	view := &BookingView{
		BookingID:  b.ID(),
		Status:     b.Status().String(),
		Seats:      b.Seats(),
		UserID:     b.UserID(),
		TotalPrice: b.TotalPrice(),
		CreatedAt:  b.CreatedAt(),
		Movie:      "Unknown",
		Theater:    "Unknown Theater",
	}

	showtime, err := q.catalog.ShowtimeByID(b.ShowtimeID())
	if err != nil {
		return view
	}
	view.Date = showtime.Date
	view.Time = showtime.Time
	if movie, err := q.catalog.MovieByID(showtime.MovieID); err == nil {
		view.Movie = movie.Title
	}
	if theater, err := q.catalog.TheaterByID(showtime.TheaterID); err == nil {
		view.Theater = theater.Name
	}
	return view
}

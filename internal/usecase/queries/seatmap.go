package queries

import (
	"context"

	"cinebook/internal/infra"
	"cinebook/internal/pkg/errs"
)

// ConfirmedSeatsReader exposes the booking ledger's live confirmed-seat
// set for a showtime.
type ConfirmedSeatsReader interface {
	ConfirmedSeats(showtimeID string) map[string]struct{}
}

type SeatMapQueries interface {
	SeatMap(ctx context.Context, showtimeID string) (*SeatMapView, error)
}

type seatMapQueriesImpl struct {
	catalog  CatalogReadStore
	bookings ConfirmedSeatsReader
}

func NewSeatMapQueries(catalog CatalogReadStore, bookings ConfirmedSeatsReader) SeatMapQueries {
	return &seatMapQueriesImpl{catalog: catalog, bookings: bookings}
}

// SeatMap joins the showtime's fixed seat layout against the booking
// ledger at call time. A seat is unavailable iff a confirmed booking
// lists it. Seats come back in the catalog's native layout order.
func (q *seatMapQueriesImpl) SeatMap(_ context.Context, showtimeID string) (*SeatMapView, error) {
	showtime, err := q.catalog.ShowtimeByID(showtimeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrShowtimeNotFound
		}
		return nil, errs.Wrap(err, "failed to find showtime")
	}

	slots, err := q.catalog.SeatsByShowtimeID(showtimeID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load seat layout")
	}

	taken := q.bookings.ConfirmedSeats(showtimeID)

	view := &SeatMapView{
		ShowtimeID: showtimeID,
		Date:       showtime.Date,
		Time:       showtime.Time,
		SeatMap:    make([]SeatView, 0, len(slots)),
	}

	// Display names degrade gracefully when a reference is dangling.
	view.Movie = "Unknown"
	if movie, err := q.catalog.MovieByID(showtime.MovieID); err == nil {
		view.Movie = movie.Title
	}
	view.Theater = "Unknown Theater"
	if theater, err := q.catalog.TheaterByID(showtime.TheaterID); err == nil {
		view.Theater = theater.Name
	}

	for _, slot := range slots {
		_, isTaken := taken[slot.SeatNumber]
		view.SeatMap = append(view.SeatMap, SeatView{
			SeatNumber:  slot.SeatNumber,
			Row:         slot.Row,
			Column:      slot.Column,
			IsAvailable: !isTaken,
			PriceTier:   slot.PriceTier,
			Price:       slot.UnitPrice(),
		})
	}
	return view, nil
}

package commands

import (
	"context"
	"strings"

	"cinebook/internal/domain/booking"
	reqdto "cinebook/internal/handler/dto/request"
	"cinebook/internal/infra"
	"cinebook/internal/pkg/clock"
	"cinebook/internal/pkg/errs"
	"cinebook/internal/usecase/queries"

	"github.com/google/uuid"
)

// SeatConflict is one offending seat from a reserve request.
type SeatConflict struct {
	SeatID string `json:"seat_id"`
	Reason string `json:"reason"`
}

const (
	ReasonSeatMissing = "doesn't exist"
	ReasonSeatBooked  = "already booked"
)

// SeatConflictError rejects a reserve request as a whole, enumerating
// every seat that failed validation and why. It matches
// errs.ErrSeatsUnavailable for errors.Is.
type SeatConflictError struct {
	Conflicts []SeatConflict
}

func (e *SeatConflictError) Error() string {
	parts := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		parts[i] = c.SeatID + " (" + c.Reason + ")"
	}
	return "Unavailable seats: " + strings.Join(parts, ", ")
}

func (e *SeatConflictError) Is(target error) bool {
	return target == errs.ErrSeatsUnavailable
}

type BookingCommands interface {
	Reserve(ctx context.Context, req reqdto.BookSeatsRequest) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookings       BookingLedger
	catalog        CatalogReadStore
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(
	bookings BookingLedger,
	catalog CatalogReadStore,
	bookingQueries queries.BookingQueries,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:       bookings,
		catalog:        catalog,
		bookingQueries: bookingQueries,
		clock:          clock,
	}
}

// Reserve validates every requested seat against the showtime's layout
// and the confirmed-seat set, then commits a pending booking. The whole
// sequence runs under the showtime lock so two overlapping reserves
// cannot both pass validation. Either all seats are accepted or no
// booking is created.
func (r *bookingCommandsImpl) Reserve(ctx context.Context, req reqdto.BookSeatsRequest) (*queries.BookingView, error) {
	showtime, err := r.catalog.ShowtimeByID(req.ShowtimeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrShowtimeNotFound
		}
		return nil, errs.Wrap(err, "failed to find showtime")
	}

	if len(req.Seats) == 0 {
		return nil, errs.ErrEmptySeatList
	}
	if req.UserID == "" {
		return nil, errs.ErrEmptyUserID
	}

	slots, err := r.catalog.SeatsByShowtimeID(showtime.ShowtimeID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load seat layout")
	}
	lookup := make(map[string]float64, len(slots))
	for _, slot := range slots {
		lookup[slot.SeatNumber] = slot.UnitPrice()
	}

	unlock := r.bookings.LockShowtime(showtime.ShowtimeID)
	defer unlock()

	taken := r.bookings.ConfirmedSeats(showtime.ShowtimeID)

	var conflicts []SeatConflict
	var totalPrice float64
	for _, seat := range req.Seats {
		price, exists := lookup[seat]
		if !exists {
			conflicts = append(conflicts, SeatConflict{SeatID: seat, Reason: ReasonSeatMissing})
			continue
		}
		if _, isTaken := taken[seat]; isTaken {
			conflicts = append(conflicts, SeatConflict{SeatID: seat, Reason: ReasonSeatBooked})
			continue
		}
		totalPrice += price
	}
	if len(conflicts) > 0 {
		return nil, &SeatConflictError{Conflicts: conflicts}
	}

	entity, err := booking.NewBooking(uuid.Nil, showtime.ShowtimeID, req.Seats, req.UserID, totalPrice, r.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := r.bookings.Create(entity); err != nil {
		return nil, errs.Wrap(err, "failed to create booking")
	}

	return r.bookingQueries.GetByID(ctx, entity.ID())
}

//go:build unit || e2e

package builder

import (
	"time"

	dombooking "cinebook/internal/domain/booking"
	reqdto "cinebook/internal/handler/dto/request"
	"cinebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	BookingID  uuid.UUID
	ShowtimeID string
	Seats      []string
	UserID     string
	Status     dombooking.Status
	TotalPrice float64
	Movie      string
	Theater    string
	Date       string
	Time       string
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		BookingID:  uuid.New(),
		ShowtimeID: "st001",
		Seats:      []string{"A5", "A6"},
		UserID:     "u1",
		Status:     dombooking.StatusPending,
		TotalPrice: 30.00,
		Movie:      "Starfall Protocol",
		Theater:    "Cinebook Downtown 12",
		Date:       "2025-10-28",
		Time:       "19:30",
		CreatedAt:  time.Date(2025, 10, 27, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(b.BookingID, b.ShowtimeID, b.Seats, b.UserID, b.TotalPrice, b.CreatedAt)
}

func (b *BookingBuilder) BuildBookRequestDTO() reqdto.BookSeatsRequest {
	return reqdto.BookSeatsRequest{
		ShowtimeID: b.ShowtimeID,
		Seats:      b.Seats,
		UserID:     b.UserID,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		BookingID:  b.BookingID,
		Status:     b.Status.String(),
		Movie:      b.Movie,
		Theater:    b.Theater,
		Date:       b.Date,
		Time:       b.Time,
		Seats:      b.Seats,
		UserID:     b.UserID,
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithShowtimeID(showtimeID string) *BookingBuilder {
	b.ShowtimeID = showtimeID
	return b
}

func (b *BookingBuilder) WithSeats(seats ...string) *BookingBuilder {
	b.Seats = seats
	return b
}

func (b *BookingBuilder) WithUserID(userID string) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithTotalPrice(totalPrice float64) *BookingBuilder {
	b.TotalPrice = totalPrice
	return b
}

func (b *BookingBuilder) AsConfirmed() *BookingBuilder {
	b.Status = dombooking.StatusConfirmed
	return b
}

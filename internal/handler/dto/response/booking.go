package response

import (
	"time"

	"cinebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	BookingID  uuid.UUID `json:"booking_id"`
	Status     string    `json:"status"`
	Movie      string    `json:"movie"`
	Theater    string    `json:"theater"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Seats      []string  `json:"seats"`
	UserID     string    `json:"user_id"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	_ = copier.Copy(resp, rm)
	if resp.Seats == nil {
		resp.Seats = []string{}
	}
	return resp
}

package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type MovieSummary struct {
	MovieID     string `json:"movie_id"`
	Title       string `json:"title"`
	Rating      string `json:"rating"`
	Duration    int    `json:"duration"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
}

type NowShowingView struct {
	Location string         `json:"location"`
	Movies   []MovieSummary `json:"movies"`
}

type RecommendationCriteria struct {
	Genre          string `json:"genre"`
	Mood           string `json:"mood"`
	TimePreference string `json:"time_preference"`
}

type RecommendationItem struct {
	MovieID     string `json:"movie_id"`
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	Rating      string `json:"rating"`
}

type RecommendationsView struct {
	Criteria        RecommendationCriteria `json:"criteria"`
	Recommendations []RecommendationItem   `json:"recommendations"`
}

type MovieRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ShowtimeItem struct {
	ShowtimeID     string  `json:"showtime_id"`
	TheaterName    string  `json:"theater_name"`
	TheaterAddress string  `json:"theater_address"`
	Time           string  `json:"time"`
	Format         string  `json:"format"`
	Price          float64 `json:"price"`
}

type ShowtimesView struct {
	Movie     MovieRef       `json:"movie"`
	Date      string         `json:"date"`
	Location  string         `json:"location"`
	Showtimes []ShowtimeItem `json:"showtimes"`
}

type SeatView struct {
	SeatNumber  string  `json:"seat_number"`
	Row         string  `json:"row"`
	Column      int     `json:"column"`
	IsAvailable bool    `json:"is_available"`
	PriceTier   string  `json:"price_tier"`
	Price       float64 `json:"price"`
}

type SeatMapView struct {
	ShowtimeID string     `json:"showtime_id"`
	Movie      string     `json:"movie"`
	Theater    string     `json:"theater"`
	Date       string     `json:"date"`
	Time       string     `json:"time"`
	SeatMap    []SeatView `json:"seat_map"`
}

type BookingView struct {
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

type BookingConfirmation struct {
	Movie     string   `json:"movie"`
	Theater   string   `json:"theater"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Seats     []string `json:"seats"`
	TotalPaid float64  `json:"total_paid"`
}

type PaymentView struct {
	PaymentID     uuid.UUID           `json:"payment_id"`
	PaymentStatus string              `json:"payment_status"`
	BookingID     uuid.UUID           `json:"booking_id"`
	ReceiptURL    string              `json:"receipt_url"`
	Confirmation  BookingConfirmation `json:"confirmation"`
}

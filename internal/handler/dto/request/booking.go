package request

type BookSeatsRequest struct {
	ShowtimeID string   `json:"showtime_id" binding:"required"`
	Seats      []string `json:"seats" binding:"required,min=1"`
	UserID     string   `json:"user_id" binding:"required"`
}

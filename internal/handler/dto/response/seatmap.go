package response

import (
	"cinebook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SeatResponse struct {
	SeatNumber  string  `json:"seat_number"`
	Row         string  `json:"row"`
	Column      int     `json:"column"`
	IsAvailable bool    `json:"is_available"`
	PriceTier   string  `json:"price_tier"`
	Price       float64 `json:"price"`
}

type SeatMapResponse struct {
	ShowtimeID string         `json:"showtime_id"`
	Movie      string         `json:"movie"`
	Theater    string         `json:"theater"`
	Date       string         `json:"date"`
	Time       string         `json:"time"`
	SeatMap    []SeatResponse `json:"seat_map"`
}

func FromSeatMapView(rm *queries.SeatMapView) *SeatMapResponse {
	resp := &SeatMapResponse{}
	_ = copier.Copy(resp, rm)
	if resp.SeatMap == nil {
		resp.SeatMap = []SeatResponse{}
	}
	return resp
}

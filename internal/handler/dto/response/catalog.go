package response

import (
	"cinebook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type MovieSummaryResponse struct {
	MovieID     string `json:"movie_id"`
	Title       string `json:"title"`
	Rating      string `json:"rating"`
	Duration    int    `json:"duration"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
}

type NowShowingResponse struct {
	Location string                 `json:"location"`
	Movies   []MovieSummaryResponse `json:"movies"`
}

type RecommendationCriteriaResponse struct {
	Genre          string `json:"genre"`
	Mood           string `json:"mood"`
	TimePreference string `json:"time_preference"`
}

type RecommendationItemResponse struct {
	MovieID     string `json:"movie_id"`
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	Rating      string `json:"rating"`
}

type RecommendationsResponse struct {
	Criteria        RecommendationCriteriaResponse `json:"criteria"`
	Recommendations []RecommendationItemResponse   `json:"recommendations"`
}

type MovieRefResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ShowtimeItemResponse struct {
	ShowtimeID     string  `json:"showtime_id"`
	TheaterName    string  `json:"theater_name"`
	TheaterAddress string  `json:"theater_address"`
	Time           string  `json:"time"`
	Format         string  `json:"format"`
	Price          float64 `json:"price"`
}

type ShowtimesResponse struct {
	Movie     MovieRefResponse       `json:"movie"`
	Date      string                 `json:"date"`
	Location  string                 `json:"location"`
	Showtimes []ShowtimeItemResponse `json:"showtimes"`
}

// Empty lists stay [] on the wire, never null.

func FromNowShowingView(rm *queries.NowShowingView) *NowShowingResponse {
	resp := &NowShowingResponse{}
	_ = copier.Copy(resp, rm)
	if resp.Movies == nil {
		resp.Movies = []MovieSummaryResponse{}
	}
	return resp
}

func FromRecommendationsView(rm *queries.RecommendationsView) *RecommendationsResponse {
	resp := &RecommendationsResponse{}
	_ = copier.Copy(resp, rm)
	if resp.Recommendations == nil {
		resp.Recommendations = []RecommendationItemResponse{}
	}
	return resp
}

func FromShowtimesView(rm *queries.ShowtimesView) *ShowtimesResponse {
	resp := &ShowtimesResponse{}
	_ = copier.Copy(resp, rm)
	if resp.Showtimes == nil {
		resp.Showtimes = []ShowtimeItemResponse{}
	}
	return resp
}

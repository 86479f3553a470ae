package queries

import (
	"context"
	"strings"

	domcatalog "cinebook/internal/domain/catalog"
	"cinebook/internal/infra"
	"cinebook/internal/pkg/errs"
)

const (
	maxNowShowing      = 10
	maxRecommendations = 5
)

// CatalogReadStore is the read surface of the immutable reference catalog.
type CatalogReadStore interface {
	MovieByID(id string) (domcatalog.Movie, error)
	TheaterByID(id string) (domcatalog.Theater, error)
	ShowtimeByID(id string) (domcatalog.Showtime, error)
	SeatsByShowtimeID(id string) ([]domcatalog.SeatSlot, error)
	Movies() []domcatalog.Movie
	Showtimes() []domcatalog.Showtime
}

type CatalogQueries interface {
	NowShowing(ctx context.Context, location string) (*NowShowingView, error)
	Recommendations(ctx context.Context, genre, mood, timePreference string) (*RecommendationsView, error)
	Showtimes(ctx context.Context, movieID, date, location string) (*ShowtimesView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

// NowShowing lists movies playing near a location. The reference catalog
// is not regional, so every movie qualifies for any location; the list is
// capped at maxNowShowing.
func (q *catalogQueriesImpl) NowShowing(_ context.Context, location string) (*NowShowingView, error) {
	movies := q.store.Movies()

	view := &NowShowingView{Location: location, Movies: []MovieSummary{}}
	for _, m := range movies {
		if len(view.Movies) == maxNowShowing {
			break
		}
		view.Movies = append(view.Movies, MovieSummary{
			MovieID:     m.MovieID,
			Title:       m.Title,
			Rating:      m.Rating,
			Duration:    m.Duration,
			Genre:       m.Genre,
			Description: m.Description,
		})
	}
	return view, nil
}

// Recommendations suggests movies by genre or mood. With no criteria it
// falls back to the first maxRecommendations catalog movies.
// timePreference is echoed back but does not narrow the match.
func (q *catalogQueriesImpl) Recommendations(_ context.Context, genre, mood, timePreference string) (*RecommendationsView, error) {
	view := &RecommendationsView{
		Criteria:        RecommendationCriteria{Genre: genre, Mood: mood, TimePreference: timePreference},
		Recommendations: []RecommendationItem{},
	}

	// Matching is case-insensitive; the echoed criteria keep the caller's casing.
	genre = strings.ToLower(genre)
	mood = strings.ToLower(mood)

	for _, m := range q.store.Movies() {
		switch {
		case genre != "" && strings.Contains(strings.ToLower(m.Genre), genre):
		case mood != "" && (strings.Contains(strings.ToLower(m.Description), mood) ||
			strings.Contains(strings.ToLower(m.Genre), mood)):
		default:
			continue
		}
		view.Recommendations = append(view.Recommendations, recommendationItem(m))
	}

	if len(view.Recommendations) == 0 && genre == "" && mood == "" {
		for _, m := range q.store.Movies() {
			if len(view.Recommendations) == maxRecommendations {
				break
			}
			view.Recommendations = append(view.Recommendations, recommendationItem(m))
		}
	}

	if len(view.Recommendations) > maxRecommendations {
		view.Recommendations = view.Recommendations[:maxRecommendations]
	}
	return view, nil
}

// Showtimes lists screenings of a movie on a date, joined with theater
// details. Showtimes whose theater is missing from the catalog are
// skipped rather than surfaced half-resolved.
func (q *catalogQueriesImpl) Showtimes(_ context.Context, movieID, date, location string) (*ShowtimesView, error) {
	movie, err := q.store.MovieByID(movieID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrMovieNotFound
		}
		return nil, errs.Wrap(err, "failed to find movie")
	}

	view := &ShowtimesView{
		Movie:     MovieRef{ID: movie.MovieID, Title: movie.Title},
		Date:      date,
		Location:  location,
		Showtimes: []ShowtimeItem{},
	}

	for _, st := range q.store.Showtimes() {
		if st.MovieID != movieID || st.Date != date {
			continue
		}
		theater, err := q.store.TheaterByID(st.TheaterID)
		if err != nil {
			continue
		}
		view.Showtimes = append(view.Showtimes, ShowtimeItem{
			ShowtimeID:     st.ShowtimeID,
			TheaterName:    theater.Name,
			TheaterAddress: theater.Address,
			Time:           st.Time,
			Format:         st.Format,
			Price:          st.Price,
		})
	}
	return view, nil
}

func recommendationItem(m domcatalog.Movie) RecommendationItem {
	return RecommendationItem{
		MovieID:     m.MovieID,
		Title:       m.Title,
		Genre:       m.Genre,
		Description: m.Description,
		Rating:      m.Rating,
	}
}

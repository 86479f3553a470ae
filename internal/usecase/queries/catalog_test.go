//go:build unit

package queries_test

import (
	"context"
	"fmt"
	"testing"

	domcatalog "cinebook/internal/domain/catalog"
	"cinebook/internal/infra"
	"cinebook/internal/pkg/errs"
	"cinebook/internal/usecase/queries"
	queriesmock "cinebook/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func movieFixture(i int, genre, description string) domcatalog.Movie {
	return domcatalog.Movie{
		MovieID:     fmt.Sprintf("mv%03d", i),
		Title:       fmt.Sprintf("Movie %d", i),
		Rating:      "PG-13",
		Duration:    100 + i,
		Genre:       genre,
		Description: description,
	}
}

func TestCatalogQueries_NowShowing(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCatalogReadStore(ctrl)
	q := queries.NewCatalogQueries(store)

	t.Run("returns movies and echoes the location", func(t *testing.T) {
		store.EXPECT().Movies().Return([]domcatalog.Movie{
			movieFixture(1, "Action", "a"),
			movieFixture(2, "Drama", "b"),
		})

		view, err := q.NowShowing(context.Background(), "Boston, MA")
		require.NoError(t, err)
		assert.Equal(t, "Boston, MA", view.Location)
		require.Len(t, view.Movies, 2)
		assert.Equal(t, "mv001", view.Movies[0].MovieID)
		assert.Equal(t, "Movie 1", view.Movies[0].Title)
	})

	t.Run("caps the listing at ten movies", func(t *testing.T) {
		var movies []domcatalog.Movie
		for i := 1; i <= 12; i++ {
			movies = append(movies, movieFixture(i, "Action", "x"))
		}
		store.EXPECT().Movies().Return(movies)

		view, err := q.NowShowing(context.Background(), "02110")
		require.NoError(t, err)
		assert.Len(t, view.Movies, 10)
	})

	t.Run("empty catalog yields an empty list", func(t *testing.T) {
		store.EXPECT().Movies().Return(nil)

		view, err := q.NowShowing(context.Background(), "Boston")
		require.NoError(t, err)
		assert.Empty(t, view.Movies)
		assert.NotNil(t, view.Movies)
	})
}

func TestCatalogQueries_Recommendations(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCatalogReadStore(ctrl)
	q := queries.NewCatalogQueries(store)

	catalogMovies := []domcatalog.Movie{
		movieFixture(1, "Action, Sci-Fi", "orbital rescue"),
		movieFixture(2, "Drama", "a quiet, heartwarming reunion"),
		movieFixture(3, "Comedy", "an exciting heist gone sideways"),
	}

	t.Run("matches by genre case-insensitively", func(t *testing.T) {
		store.EXPECT().Movies().Return(catalogMovies)

		view, err := q.Recommendations(context.Background(), "ACTION", "", "")
		require.NoError(t, err)
		require.Len(t, view.Recommendations, 1)
		assert.Equal(t, "mv001", view.Recommendations[0].MovieID)
		assert.Equal(t, "ACTION", view.Criteria.Genre)
	})

	t.Run("matches mood against description and genre", func(t *testing.T) {
		store.EXPECT().Movies().Return(catalogMovies)

		view, err := q.Recommendations(context.Background(), "", "exciting", "")
		require.NoError(t, err)
		require.Len(t, view.Recommendations, 1)
		assert.Equal(t, "mv003", view.Recommendations[0].MovieID)
	})

	t.Run("no criteria falls back to the first five movies", func(t *testing.T) {
		var movies []domcatalog.Movie
		for i := 1; i <= 8; i++ {
			movies = append(movies, movieFixture(i, "Genre", "desc"))
		}
		// fallback re-reads the catalog
		store.EXPECT().Movies().Return(movies).Times(2)

		view, err := q.Recommendations(context.Background(), "", "", "")
		require.NoError(t, err)
		assert.Len(t, view.Recommendations, 5)
	})

	t.Run("unmatched criteria yields empty, not the fallback", func(t *testing.T) {
		store.EXPECT().Movies().Return(catalogMovies)

		view, err := q.Recommendations(context.Background(), "western", "", "")
		require.NoError(t, err)
		assert.Empty(t, view.Recommendations)
	})

	t.Run("time preference is echoed but never filters", func(t *testing.T) {
		store.EXPECT().Movies().Return(catalogMovies)

		view, err := q.Recommendations(context.Background(), "drama", "", "evening")
		require.NoError(t, err)
		assert.Equal(t, "evening", view.Criteria.TimePreference)
		assert.Len(t, view.Recommendations, 1)
	})
}

func TestCatalogQueries_Showtimes(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCatalogReadStore(ctrl)
	q := queries.NewCatalogQueries(store)

	movie := movieFixture(1, "Action", "x")
	theater := domcatalog.Theater{TheaterID: "th001", Name: "Cinebook Downtown 12", Address: "450 Harbor Street"}
	showtimes := []domcatalog.Showtime{
		{ShowtimeID: "st001", MovieID: "mv001", TheaterID: "th001", Date: "2025-10-28", Time: "19:30", Format: "Standard", Price: 15.00},
		{ShowtimeID: "st002", MovieID: "mv001", TheaterID: "th001", Date: "2025-10-29", Time: "20:00", Format: "IMAX", Price: 19.50},
		{ShowtimeID: "st003", MovieID: "mv002", TheaterID: "th001", Date: "2025-10-28", Time: "17:15", Format: "Standard", Price: 13.00},
	}

	t.Run("filters by movie and date and joins the theater", func(t *testing.T) {
		store.EXPECT().MovieByID("mv001").Return(movie, nil)
		store.EXPECT().Showtimes().Return(showtimes)
		store.EXPECT().TheaterByID("th001").Return(theater, nil)

		view, err := q.Showtimes(context.Background(), "mv001", "2025-10-28", "Boston")
		require.NoError(t, err)
		assert.Equal(t, "mv001", view.Movie.ID)
		assert.Equal(t, "Boston", view.Location)
		require.Len(t, view.Showtimes, 1)
		assert.Equal(t, "st001", view.Showtimes[0].ShowtimeID)
		assert.Equal(t, "Cinebook Downtown 12", view.Showtimes[0].TheaterName)
		assert.Equal(t, "450 Harbor Street", view.Showtimes[0].TheaterAddress)
	})

	t.Run("unknown movie fails with not found", func(t *testing.T) {
		store.EXPECT().MovieByID("mv999").
			Return(domcatalog.Movie{}, infra.WrapRepoErr("movie not found", nil, infra.KindNotFound))

		_, err := q.Showtimes(context.Background(), "mv999", "2025-10-28", "Boston")
		assert.ErrorIs(t, err, errs.ErrMovieNotFound)
	})

	t.Run("showtimes with a dangling theater are skipped", func(t *testing.T) {
		store.EXPECT().MovieByID("mv001").Return(movie, nil)
		store.EXPECT().Showtimes().Return(showtimes[:1])
		store.EXPECT().TheaterByID("th001").
			Return(domcatalog.Theater{}, infra.WrapRepoErr("theater not found", nil, infra.KindNotFound))

		view, err := q.Showtimes(context.Background(), "mv001", "2025-10-28", "Boston")
		require.NoError(t, err)
		assert.Empty(t, view.Showtimes)
	})
}

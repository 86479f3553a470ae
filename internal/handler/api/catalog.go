package api

import (
	"net/http"

	resdto "cinebook/internal/handler/dto/response"
	"cinebook/internal/handler/httperr"
	"cinebook/internal/pkg/errs"
	"cinebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary Now showing
// @Description List movies currently playing near a location
// @Tags movies
// @Produce json
// @Param location query string false "City, state or ZIP code"
// @Success 200 {object} resdto.NowShowingResponse
// @Router /movies/now-showing [get]
func (h *CatalogHandler) GetNowShowing(c *gin.Context) {
	view, err := h.catalogQueries.NowShowing(c.Request.Context(), c.Query("location"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromNowShowingView(view))
}

// @Summary Movie recommendations
// @Description Recommend movies by genre or mood
// @Tags movies
// @Produce json
// @Param genre query string false "Preferred genre"
// @Param mood query string false "Viewer mood"
// @Param time_preference query string false "Time of day preference"
// @Success 200 {object} resdto.RecommendationsResponse
// @Router /movies/recommendations [get]
func (h *CatalogHandler) GetRecommendations(c *gin.Context) {
	view, err := h.catalogQueries.Recommendations(
		c.Request.Context(),
		c.Query("genre"),
		c.Query("mood"),
		c.Query("time_preference"),
	)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRecommendationsView(view))
}

// @Summary Movie showtimes
// @Description List showtimes for a movie on a date
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param location query string false "City, state or ZIP code"
// @Success 200 {object} resdto.ShowtimesResponse
// @Failure 404 {object} map[string]string
// @Router /movies/{id}/showtimes [get]
func (h *CatalogHandler) GetShowtimes(c *gin.Context) {
	view, err := h.catalogQueries.Showtimes(
		c.Request.Context(),
		c.Param("id"),
		c.Query("date"),
		c.Query("location"),
	)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Movie not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromShowtimesView(view))
}

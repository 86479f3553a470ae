package api

import (
	"net/http"

	resdto "cinebook/internal/handler/dto/response"
	"cinebook/internal/handler/httperr"
	"cinebook/internal/pkg/errs"
	"cinebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SeatMapHandler struct {
	seatMapQueries queries.SeatMapQueries
}

func NewSeatMapHandler(seatMapQueries queries.SeatMapQueries) *SeatMapHandler {
	return &SeatMapHandler{
		seatMapQueries: seatMapQueries,
	}
}

// @Summary Seat map
// @Description Get the seat layout and live availability for a showtime
// @Tags showtimes
// @Produce json
// @Param id path string true "Showtime ID"
// @Success 200 {object} resdto.SeatMapResponse
// @Failure 404 {object} map[string]string
// @Router /showtimes/{id}/seats [get]
func (h *SeatMapHandler) GetSeatMap(c *gin.Context) {
	view, err := h.seatMapQueries.SeatMap(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrShowtimeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Showtime not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSeatMapView(view))
}

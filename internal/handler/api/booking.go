package api

import (
	"net/http"

	reqdto "cinebook/internal/handler/dto/request"
	resdto "cinebook/internal/handler/dto/response"
	"cinebook/internal/handler/httperr"
	"cinebook/internal/pkg/errs"
	"cinebook/internal/usecase/commands"
	"cinebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Book seats
// @Description Reserve seats for a showtime as a pending booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.BookSeatsRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) BookSeats(c *gin.Context) {
	var req reqdto.BookSeatsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	bookingRM, err := h.bookingCommands.Reserve(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrShowtimeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Showtime not found",
			})
		case errs.Is(err, errs.ErrEmptySeatList):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Seat list cannot be empty",
			})
		case errs.Is(err, errs.ErrEmptyUserID):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "User ID cannot be empty",
			})
		case errs.Is(err, errs.ErrSeatsUnavailable):
			// The message enumerates every offending seat.
			c.JSON(http.StatusConflict, gin.H{
				"error": err.Error(),
			})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(bookingRM))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	bookingRM, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(bookingRM))
}

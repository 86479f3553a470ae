package api

import (
	"net/http"

	reqdto "cinebook/internal/handler/dto/request"
	resdto "cinebook/internal/handler/dto/response"
	"cinebook/internal/handler/httperr"
	"cinebook/internal/pkg/errs"
	"cinebook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
	}
}

// @Summary Process payment
// @Description Settle a pending booking and confirm it
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.ProcessPaymentRequest true "Payment request"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req reqdto.ProcessPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	paymentRM, err := h.paymentCommands.Settle(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errs.Is(err, errs.ErrBookingNotPending):
			c.JSON(http.StatusConflict, gin.H{
				"error": err.Error(),
			})
		case errs.Is(err, errs.ErrBookingPaid):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking already paid",
			})
		case errs.Is(err, errs.ErrAmountMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
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

	c.JSON(http.StatusCreated, resdto.FromPaymentView(paymentRM))
}

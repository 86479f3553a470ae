package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	reqdto "cinebook/internal/handler/dto/request"
	resdto "cinebook/internal/handler/dto/response"
	"cinebook/internal/pkg/errs"
	"cinebook/internal/usecase/commands"
	"cinebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ToolDescriptor advertises one callable tool to an external agent.
type ToolDescriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	InputSchema any    `json:"inputSchema"`
}

type toolCallRequest struct {
	Name      string          `json:"name" binding:"required"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolsHandler is the tool dispatch boundary. Unlike the REST routes it
// always answers 200: a rejected call degrades to {"error": <message>}
// in the body so the calling agent can read the cause.
type ToolsHandler struct {
	catalogQueries  queries.CatalogQueries
	seatMapQueries  queries.SeatMapQueries
	bookingCommands commands.BookingCommands
	paymentCommands commands.PaymentCommands
}

func NewToolsHandler(
	catalogQueries queries.CatalogQueries,
	seatMapQueries queries.SeatMapQueries,
	bookingCommands commands.BookingCommands,
	paymentCommands commands.PaymentCommands,
) *ToolsHandler {
	return &ToolsHandler{
		catalogQueries:  catalogQueries,
		seatMapQueries:  seatMapQueries,
		bookingCommands: bookingCommands,
		paymentCommands: paymentCommands,
	}
}

func objectSchema(required []string, props gin.H) gin.H {
	schema := gin.H{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

var toolDescriptors = []ToolDescriptor{
	{
		Name:        "get_now_showing",
		Description: "Returns a list of movies currently showing in a given city or ZIP code.",
		InputSchema: objectSchema([]string{"location"}, gin.H{
			"location": gin.H{"type": "string", "description": `City, state or ZIP code (e.g., "Boston, MA")`},
		}),
	},
	{
		Name:        "get_recommendations",
		Description: "Suggests movies based on mood, genre, or time preferences.",
		InputSchema: objectSchema(nil, gin.H{
			"genre":           gin.H{"type": "string", "description": `Movie genre (optional, e.g., "action", "comedy")`},
			"mood":            gin.H{"type": "string", "description": `Mood description (optional, e.g., "exciting", "romantic")`},
			"time_preference": gin.H{"type": "string", "description": `Time of day preference (optional, e.g., "evening")`},
		}),
	},
	{
		Name:        "get_showtimes",
		Description: "Fetches available showtimes for a specific movie and location.",
		InputSchema: objectSchema([]string{"movie_id", "date", "location"}, gin.H{
			"movie_id": gin.H{"type": "string", "description": `Movie ID (e.g., "mv001")`},
			"date":     gin.H{"type": "string", "description": "Date in YYYY-MM-DD format"},
			"location": gin.H{"type": "string", "description": "City, state or ZIP code"},
		}),
	},
	{
		Name:        "get_seat_map",
		Description: "Displays available and reserved seats for a specific showtime.",
		InputSchema: objectSchema([]string{"showtime_id"}, gin.H{
			"showtime_id": gin.H{"type": "string", "description": `Showtime ID (e.g., "st001")`},
		}),
	},
	{
		Name:        "book_seats",
		Description: "Reserves selected seats for the user.",
		InputSchema: objectSchema([]string{"showtime_id", "seats", "user_id"}, gin.H{
			"showtime_id": gin.H{"type": "string", "description": `Showtime ID (e.g., "st001")`},
			"seats":       gin.H{"type": "array", "items": gin.H{"type": "string"}, "description": `List of seat numbers (e.g., ["A5", "A6"])`},
			"user_id":     gin.H{"type": "string", "description": "User identifier"},
		}),
	},
	{
		Name:        "process_payment",
		Description: "Handles simulated payment transaction.",
		InputSchema: objectSchema([]string{"booking_id", "payment_method", "amount"}, gin.H{
			"booking_id":     gin.H{"type": "string", "description": "Booking ID from book_seats"},
			"payment_method": gin.H{"type": "string", "description": `Payment method (e.g., "card", "cash")`},
			"amount":         gin.H{"type": "number", "description": "Payment amount in USD"},
		}),
	},
}

// @Summary List tools
// @Description List the callable tool descriptors
// @Tags tools
// @Produce json
// @Success 200 {object} map[string]any
// @Router /tools [get]
func (h *ToolsHandler) ListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": toolDescriptors})
}

// @Summary Call tool
// @Description Invoke a tool by name with a JSON argument object
// @Tags tools
// @Accept json
// @Produce json
// @Param request body toolCallRequest true "Tool call"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /tools/call [post]
func (h *ToolsHandler) CallTool(c *gin.Context) {
	var req toolCallRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	payload, err := h.dispatch(c, req)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": toolErrorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (h *ToolsHandler) dispatch(c *gin.Context, req toolCallRequest) (any, error) {
	ctx := c.Request.Context()

	switch req.Name {
	case "get_now_showing":
		var args struct {
			Location string `json:"location"`
		}
		if err := unmarshalArgs(req.Arguments, &args); err != nil {
			return nil, err
		}
		view, err := h.catalogQueries.NowShowing(ctx, args.Location)
		if err != nil {
			return nil, err
		}
		return resdto.FromNowShowingView(view), nil

	case "get_recommendations":
		var args struct {
			Genre          string `json:"genre"`
			Mood           string `json:"mood"`
			TimePreference string `json:"time_preference"`
		}
		if err := unmarshalArgs(req.Arguments, &args); err != nil {
			return nil, err
		}
		view, err := h.catalogQueries.Recommendations(ctx, args.Genre, args.Mood, args.TimePreference)
		if err != nil {
			return nil, err
		}
		return resdto.FromRecommendationsView(view), nil

	case "get_showtimes":
		var args struct {
			MovieID  string `json:"movie_id"`
			Date     string `json:"date"`
			Location string `json:"location"`
		}
		if err := unmarshalArgs(req.Arguments, &args); err != nil {
			return nil, err
		}
		view, err := h.catalogQueries.Showtimes(ctx, args.MovieID, args.Date, args.Location)
		if err != nil {
			return nil, err
		}
		return resdto.FromShowtimesView(view), nil

	case "get_seat_map":
		var args struct {
			ShowtimeID string `json:"showtime_id"`
		}
		if err := unmarshalArgs(req.Arguments, &args); err != nil {
			return nil, err
		}
		view, err := h.seatMapQueries.SeatMap(ctx, args.ShowtimeID)
		if err != nil {
			return nil, err
		}
		return resdto.FromSeatMapView(view), nil

	case "book_seats":
		var args reqdto.BookSeatsRequest
		if err := unmarshalArgs(req.Arguments, &args); err != nil {
			return nil, err
		}
		view, err := h.bookingCommands.Reserve(ctx, args)
		if err != nil {
			return nil, err
		}
		return resdto.FromBookingView(view), nil

	case "process_payment":
		var args struct {
			BookingID     string   `json:"booking_id"`
			PaymentMethod string   `json:"payment_method"`
			Amount        *float64 `json:"amount"`
		}
		if err := unmarshalArgs(req.Arguments, &args); err != nil {
			return nil, err
		}
		bookingID, err := uuid.Parse(args.BookingID)
		if err != nil {
			return nil, errs.ErrBookingNotFound
		}
		view, err := h.paymentCommands.Settle(ctx, reqdto.ProcessPaymentRequest{
			BookingID:     bookingID,
			PaymentMethod: args.PaymentMethod,
			Amount:        args.Amount,
		})
		if err != nil {
			return nil, err
		}
		return resdto.FromPaymentView(view), nil

	default:
		return nil, fmt.Errorf("unknown tool: %s", req.Name)
	}
}

func unmarshalArgs(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errs.Wrap(err, "invalid tool arguments")
	}
	return nil
}

// toolErrorMessage flattens a usecase error into the agent-facing text.
// Conflict and mismatch errors carry their full cause in the message;
// reference lookups collapse to a short invalid-ID line.
func toolErrorMessage(err error) string {
	switch {
	case errs.Is(err, errs.ErrMovieNotFound):
		return "Invalid movie ID"
	case errs.Is(err, errs.ErrShowtimeNotFound):
		return "Invalid showtime ID"
	case errs.Is(err, errs.ErrBookingNotFound):
		return "Invalid booking ID"
	case errs.Is(err, errs.ErrEmptySeatList), errs.Is(err, errs.ErrEmptyUserID):
		return "Seats and user_id are required"
	case errs.Is(err, errs.ErrSeatsUnavailable),
		errs.Is(err, errs.ErrBookingNotPending),
		errs.Is(err, errs.ErrAmountMismatch):
		return err.Error()
	default:
		return err.Error()
	}
}

//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"cinebook/internal/handler/api"
	"cinebook/internal/pkg/errs"
	"cinebook/internal/usecase/commands"
	"cinebook/internal/usecase/queries"
	"cinebook/tests/common/builder"
	"cinebook/tests/common/httptest"
	commandsmock "cinebook/tests/mock/commands"
	queriesmock "cinebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ToolsHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockCatalog    *queriesmock.MockCatalogQueries
	mockSeatMap    *queriesmock.MockSeatMapQueries
	mockBookingCmd *commandsmock.MockBookingCommands
	mockPaymentCmd *commandsmock.MockPaymentCommands
	handler        *api.ToolsHandler
}

func (s *ToolsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.mockSeatMap = queriesmock.NewMockSeatMapQueries(s.mockCtrl)
	s.mockBookingCmd = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockPaymentCmd = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.handler = api.NewToolsHandler(s.mockCatalog, s.mockSeatMap, s.mockBookingCmd, s.mockPaymentCmd)

	s.router.GET("/tools", s.handler.ListTools)
	s.router.POST("/tools/call", s.handler.CallTool)
}

func (s *ToolsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestToolsHandlerSuite(t *testing.T) {
	suite.Run(t, new(ToolsHandlerTestSuite))
}

func (s *ToolsHandlerTestSuite) call(name string, args any) map[string]any {
	body := gin.H{"name": name}
	if args != nil {
		body["arguments"] = args
	}
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tools/call", body)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var payload map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func (s *ToolsHandlerTestSuite) TestListTools() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tools", nil)

	var resp struct {
		Tools []api.ToolDescriptor `json:"tools"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)

	names := make([]string, 0, len(resp.Tools))
	for _, tool := range resp.Tools {
		s.NotEmpty(tool.Description)
		s.NotNil(tool.InputSchema)
		names = append(names, tool.Name)
	}
	s.Equal([]string{
		"get_now_showing",
		"get_recommendations",
		"get_showtimes",
		"get_seat_map",
		"book_seats",
		"process_payment",
	}, names)
}

func (s *ToolsHandlerTestSuite) TestCallToolSuccess() {
	s.Run("get_now_showing forwards location and returns the listing", func() {
		s.mockCatalog.EXPECT().NowShowing(gomock.Any(), "Boston, MA").
			Return(&queries.NowShowingView{
				Location: "Boston, MA",
				Movies:   []queries.MovieSummary{{MovieID: "mv001", Title: "Starfall Protocol"}},
			}, nil).Times(1)

		payload := s.call("get_now_showing", gin.H{"location": "Boston, MA"})
		s.Equal("Boston, MA", payload["location"])
		s.Len(payload["movies"], 1)
	})

	s.Run("get_recommendations echoes criteria", func() {
		s.mockCatalog.EXPECT().Recommendations(gomock.Any(), "action", "exciting", "evening").
			Return(&queries.RecommendationsView{
				Criteria:        queries.RecommendationCriteria{Genre: "action", Mood: "exciting", TimePreference: "evening"},
				Recommendations: []queries.RecommendationItem{{MovieID: "mv001"}},
			}, nil).Times(1)

		payload := s.call("get_recommendations", gin.H{"genre": "action", "mood": "exciting", "time_preference": "evening"})
		criteria, ok := payload["criteria"].(map[string]any)
		s.Require().True(ok)
		s.Equal("action", criteria["genre"])
	})

	s.Run("get_showtimes forwards movie, date and location", func() {
		s.mockCatalog.EXPECT().Showtimes(gomock.Any(), "mv001", "2025-10-28", "Boston, MA").
			Return(&queries.ShowtimesView{
				Movie:     queries.MovieRef{ID: "mv001", Title: "Starfall Protocol"},
				Date:      "2025-10-28",
				Location:  "Boston, MA",
				Showtimes: []queries.ShowtimeItem{{ShowtimeID: "st001", Time: "19:30"}},
			}, nil).Times(1)

		payload := s.call("get_showtimes", gin.H{"movie_id": "mv001", "date": "2025-10-28", "location": "Boston, MA"})
		s.Equal("2025-10-28", payload["date"])
		s.Len(payload["showtimes"], 1)
	})

	s.Run("get_seat_map returns the joined layout", func() {
		s.mockSeatMap.EXPECT().SeatMap(gomock.Any(), "st001").
			Return(&queries.SeatMapView{
				ShowtimeID: "st001",
				Movie:      "Starfall Protocol",
				SeatMap:    []queries.SeatView{{SeatNumber: "A1", IsAvailable: true}},
			}, nil).Times(1)

		payload := s.call("get_seat_map", gin.H{"showtime_id": "st001"})
		s.Equal("st001", payload["showtime_id"])
		s.Len(payload["seat_map"], 1)
	})

	s.Run("book_seats returns the created booking", func() {
		view := builder.NewBookingBuilder().BuildViewQuery()
		s.mockBookingCmd.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		payload := s.call("book_seats", gin.H{
			"showtime_id": "st001",
			"seats":       []string{"A5", "A6"},
			"user_id":     "u1",
		})
		s.Equal(view.BookingID.String(), payload["booking_id"])
		s.Equal("pending", payload["status"])
	})

	s.Run("process_payment parses the booking id and settles", func() {
		pb := builder.NewPaymentBuilder()
		view := pb.BuildViewQuery()
		s.mockPaymentCmd.EXPECT().Settle(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		payload := s.call("process_payment", gin.H{
			"booking_id":     pb.BookingID.String(),
			"payment_method": "card",
			"amount":         30.00,
		})
		s.Equal(view.PaymentID.String(), payload["payment_id"])
		s.Equal("success", payload["payment_status"])
		s.Equal(view.ReceiptURL, payload["receipt_url"])
	})
}

func (s *ToolsHandlerTestSuite) TestCallToolErrors() {
	s.Run("unknown showtime collapses to an invalid-ID line", func() {
		s.mockSeatMap.EXPECT().SeatMap(gomock.Any(), "st999").
			Return(nil, errs.ErrShowtimeNotFound).Times(1)

		payload := s.call("get_seat_map", gin.H{"showtime_id": "st999"})
		s.Equal("Invalid showtime ID", payload["error"])
	})

	s.Run("unknown movie collapses to an invalid-ID line", func() {
		s.mockCatalog.EXPECT().Showtimes(gomock.Any(), "mv999", "2025-10-28", "Boston, MA").
			Return(nil, errs.ErrMovieNotFound).Times(1)

		payload := s.call("get_showtimes", gin.H{"movie_id": "mv999", "date": "2025-10-28", "location": "Boston, MA"})
		s.Equal("Invalid movie ID", payload["error"])
	})

	s.Run("seat conflicts keep the full enumeration", func() {
		conflictErr := &commands.SeatConflictError{Conflicts: []commands.SeatConflict{
			{SeatID: "A5", Reason: commands.ReasonSeatBooked},
			{SeatID: "Z99", Reason: commands.ReasonSeatMissing},
		}}
		s.mockBookingCmd.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(nil, conflictErr).Times(1)

		payload := s.call("book_seats", gin.H{"showtime_id": "st001", "seats": []string{"A5", "Z99"}, "user_id": "u1"})
		s.Equal("Unavailable seats: A5 (already booked), Z99 (doesn't exist)", payload["error"])
	})

	s.Run("missing seats or user collapse to one required line", func() {
		s.mockBookingCmd.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrEmptySeatList).Times(1)

		payload := s.call("book_seats", gin.H{"showtime_id": "st001", "seats": []string{}, "user_id": "u1"})
		s.Equal("Seats and user_id are required", payload["error"])
	})

	s.Run("amount mismatch keeps the expected-vs-got message", func() {
		s.mockPaymentCmd.EXPECT().Settle(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("Amount mismatch. Expected $30.00, got $29.99"), errs.ErrAmountMismatch)).Times(1)

		payload := s.call("process_payment", gin.H{
			"booking_id":     builder.NewPaymentBuilder().BookingID.String(),
			"payment_method": "card",
			"amount":         29.99,
		})
		s.Equal("Amount mismatch. Expected $30.00, got $29.99", payload["error"])
	})

	s.Run("unparseable booking id never reaches the usecase", func() {
		payload := s.call("process_payment", gin.H{
			"booking_id":     "not-a-uuid",
			"payment_method": "card",
			"amount":         30.00,
		})
		s.Equal("Invalid booking ID", payload["error"])
	})

	s.Run("unknown tool name", func() {
		payload := s.call("teleport", nil)
		s.Equal("unknown tool: teleport", payload["error"])
	})

	s.Run("missing tool name is a malformed request", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tools/call", gin.H{"arguments": gin.H{}})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cinebook/internal/handler/api"
	"cinebook/internal/handler/middleware"
	"cinebook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	catalogHandler *api.CatalogHandler,
	seatMapHandler *api.SeatMapHandler,
	bookingHandler *api.BookingHandler,
	paymentHandler *api.PaymentHandler,
	toolsHandler *api.ToolsHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, seatMapHandler, bookingHandler, paymentHandler, toolsHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	catalogHandler *api.CatalogHandler,
	seatMapHandler *api.SeatMapHandler,
	bookingHandler *api.BookingHandler,
	paymentHandler *api.PaymentHandler,
	toolsHandler *api.ToolsHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		movies := apiGroup.Group("/movies")
		{
			addRoutes(movies, []route{
				{Method: http.MethodGet, Path: "/now-showing", Handler: catalogHandler.GetNowShowing},
				{Method: http.MethodGet, Path: "/recommendations", Handler: catalogHandler.GetRecommendations},
				{Method: http.MethodGet, Path: "/:id/showtimes", Handler: catalogHandler.GetShowtimes},
			})
		}

		showtimes := apiGroup.Group("/showtimes")
		{
			addRoutes(showtimes, []route{
				{Method: http.MethodGet, Path: "/:id/seats", Handler: seatMapHandler.GetSeatMap},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.BookSeats},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
			})
		}

		payments := apiGroup.Group("/payments")
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "", Handler: paymentHandler.ProcessPayment},
			})
		}

		tools := apiGroup.Group("/tools")
		{
			addRoutes(tools, []route{
				{Method: http.MethodGet, Path: "", Handler: toolsHandler.ListTools},
				{Method: http.MethodPost, Path: "/call", Handler: toolsHandler.CallTool},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

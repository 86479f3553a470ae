package components

import (
	"cinebook/internal/handler"
	"cinebook/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewSeatMapHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewToolsHandler,
	),
	fx.Invoke(handler.NewRouter),
)

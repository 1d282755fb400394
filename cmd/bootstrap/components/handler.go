package components

import (
	"golden-travel/internal/handler"
	"golden-travel/internal/handler/api"
	"golden-travel/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewDealHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

package components

import (
	"booking-api/internal/handler"
	"booking-api/internal/handler/api"
	"booking-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAdminHandler,
		middleware.NewAdminAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

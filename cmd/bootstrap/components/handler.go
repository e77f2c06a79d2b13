package components

import (
	"gas-agency/internal/handler"
	"gas-agency/internal/handler/api"
	"gas-agency/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewProfileHandler,
		api.NewNoticeHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

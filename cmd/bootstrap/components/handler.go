package components

import (
	"repairshop/internal/handler"
	"repairshop/internal/handler/api"
	"repairshop/internal/handler/middleware"
	"repairshop/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAppointmentHandler,
		api.NewOrderHandler,
		api.NewCatalogHandler,
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

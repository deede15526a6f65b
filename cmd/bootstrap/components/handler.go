package components

import (
	"wescoot-api/internal/handler"
	"wescoot-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewScooterHandler,
		api.NewPaymentHandler,
	),
	fx.Invoke(handler.NewRouter),
)

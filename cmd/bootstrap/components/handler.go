package components

import (
	"locker-hub/internal/handler"
	"locker-hub/internal/handler/api"
	"locker-hub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewLockerHandler,
		api.NewVerificationHandler,
		middleware.NewAuthMiddleware,
		func(r *api.ReservationHandler, l *api.LockerHandler, v *api.VerificationHandler) handler.Handlers {
			return handler.Handlers{Reservation: r, Locker: l, Verification: v}
		},
	),
	fx.Invoke(handler.NewRouter),
)

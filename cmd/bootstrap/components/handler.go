package components

import (
	"travel-booking/internal/handler"
	"travel-booking/internal/handler/api"
	"travel-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewInventoryHandler,
		api.NewArchiveHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	inventory *api.InventoryHandler,
	archive *api.ArchiveHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Booking:   booking,
		Inventory: inventory,
		Archive:   archive,
	}
}

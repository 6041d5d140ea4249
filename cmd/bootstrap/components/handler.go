package components

import (
	"schnittwerk-api/internal/handler"
	"schnittwerk-api/internal/handler/api"
	"schnittwerk-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewBookingHandler,
		api.NewShopHandler,
		api.NewLoyaltyHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	catalog *api.CatalogHandler,
	booking *api.BookingHandler,
	shop *api.ShopHandler,
	loyalty *api.LoyaltyHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Catalog: catalog,
		Booking: booking,
		Shop:    shop,
		Loyalty: loyalty,
		Admin:   admin,
	}
}

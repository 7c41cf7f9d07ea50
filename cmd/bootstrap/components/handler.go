package components

import (
	"gin-storefront/internal/handler"
	"gin-storefront/internal/handler/api"
	"gin-storefront/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProductHandler,
		api.NewDiscountHandler,
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		api.NewAdminHandler,
		api.NewProfileHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth     *api.AuthHandler
	Product  *api.ProductHandler
	Discount *api.DiscountHandler
	Checkout *api.CheckoutHandler
	Order    *api.OrderHandler
	Admin    *api.AdminHandler
	Profile  *api.ProfileHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:     p.Auth,
		Product:  p.Product,
		Discount: p.Discount,
		Checkout: p.Checkout,
		Order:    p.Order,
		Admin:    p.Admin,
		Profile:  p.Profile,
	}
}

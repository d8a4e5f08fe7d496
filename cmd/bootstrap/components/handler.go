package components

import (
	"rental-core/internal/handler"
	"rental-core/internal/handler/api"
	reqdto "rental-core/internal/handler/dto/request"
	"rental-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewOrderHandler,
		api.NewInvoiceHandler,
		api.NewPaymentHandler,
		api.NewProductHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(
		reqdto.RegisterValidators,
		handler.NewRouter,
	),
)

type handlerParams struct {
	fx.In

	Cart    *api.CartHandler
	Order   *api.OrderHandler
	Invoice *api.InvoiceHandler
	Payment *api.PaymentHandler
	Product *api.ProductHandler
	Review  *api.ReviewHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Cart:    p.Cart,
		Order:   p.Order,
		Invoice: p.Invoice,
		Payment: p.Payment,
		Product: p.Product,
		Review:  p.Review,
	}
}

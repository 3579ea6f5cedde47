package components

import (
	"book-courier/internal/handler"
	"book-courier/internal/handler/api"
	"book-courier/internal/handler/middleware"
	"book-courier/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewBookHandler,
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		api.NewSellerRequestHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
		NewObservability,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	user *api.UserHandler,
	book *api.BookHandler,
	checkout *api.CheckoutHandler,
	order *api.OrderHandler,
	sellerRequest *api.SellerRequestHandler,
) handler.Handlers {
	return handler.Handlers{
		User:          user,
		Book:          book,
		Checkout:      checkout,
		Order:         order,
		SellerRequest: sellerRequest,
	}
}

func NewObservability(logger *zap.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) handler.Observability {
	return handler.Observability{
		Logger:   logger,
		Metrics:  m,
		Gatherer: gatherer,
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"book-courier/internal/handler/api"
	"book-courier/internal/handler/middleware"
	"book-courier/internal/pkg/config"
	"book-courier/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	User          *api.UserHandler
	Book          *api.BookHandler
	Checkout      *api.CheckoutHandler
	Order         *api.OrderHandler
	SellerRequest *api.SellerRequestHandler
}

type Observability struct {
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, obs Observability) {
	setupMiddleware(engine, cfg, obs)
	setupRoutes(engine, h, authMiddleware, obs)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, obs Observability) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, obs.Logger))
	engine.Use(middleware.RequestLogger(obs.Logger))
	engine.Use(middleware.HTTPMetrics(obs.Metrics))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, auth *middleware.AuthMiddleware, obs Observability) {
	engine.GET("/", root)
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", middleware.MetricsHandler(obs.Gatherer))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// public routes still tag request logs with the caller when a token is sent
	optional := []gin.HandlerFunc{auth.OptionalAuth()}
	verified := []gin.HandlerFunc{auth.RequireAuth()}
	admin := []gin.HandlerFunc{auth.RequireAuth(), auth.RequireAdmin()}
	seller := []gin.HandlerFunc{auth.RequireAuth(), auth.RequireSeller()}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/users", Handler: h.User.Register},
		{Method: http.MethodGet, Path: "/users/role", Handler: h.User.GetRole, Mw: verified},
		{Method: http.MethodGet, Path: "/users", Handler: h.User.List, Mw: admin},
		{Method: http.MethodPatch, Path: "/users/:email", Handler: h.User.UpdateProfile},
		{Method: http.MethodPatch, Path: "/update-role", Handler: h.User.UpdateRole, Mw: admin},

		{Method: http.MethodGet, Path: "/books", Handler: h.Book.List, Mw: optional},
		{Method: http.MethodGet, Path: "/books/:id", Handler: h.Book.Get, Mw: optional},
		{Method: http.MethodPost, Path: "/books", Handler: h.Book.Create, Mw: seller},
		{Method: http.MethodPatch, Path: "/books/:id", Handler: h.Book.Update},

		{Method: http.MethodPost, Path: "/create-checkout-session", Handler: h.Checkout.CreateSession, Mw: optional},
		{Method: http.MethodPatch, Path: "/dashboard/payment-success", Handler: h.Checkout.ConfirmPayment},
		{Method: http.MethodPost, Path: "/dashboard/payment-success", Handler: h.Checkout.ConfirmPaymentBody},

		{Method: http.MethodGet, Path: "/dashboard/my-orders", Handler: h.Order.ListMine, Mw: verified},
		{Method: http.MethodGet, Path: "/dashboard/my-orders/:email", Handler: h.Order.ListMine, Mw: verified},
		{Method: http.MethodGet, Path: "/dashboard/manage-orders/:email", Handler: h.Order.ListBySeller},
		{Method: http.MethodGet, Path: "/dashboard/my-inventory/:email", Handler: h.Book.ListBySeller},
		{Method: http.MethodPatch, Path: "/orders/:id", Handler: h.Order.UpdateStatus},
		{Method: http.MethodDelete, Path: "/orders/:id", Handler: h.Order.Cancel},

		{Method: http.MethodPost, Path: "/become-seller", Handler: h.SellerRequest.Request, Mw: verified},
		{Method: http.MethodGet, Path: "/seller-request/status", Handler: h.SellerRequest.Status, Mw: verified},
		{Method: http.MethodGet, Path: "/seller-requests", Handler: h.SellerRequest.List, Mw: admin},
		{Method: http.MethodDelete, Path: "/seller-requests/:email", Handler: h.SellerRequest.Reject, Mw: admin},
		{Method: http.MethodPatch, Path: "/seller-requests/:email/approve", Handler: h.SellerRequest.Approve, Mw: admin},
	})
}

func root(c *gin.Context) {
	c.String(http.StatusOK, "Book Courier Server is Running")
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

// chainHandlers runs middleware inline; each must call c.Next() only as its last step.
func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

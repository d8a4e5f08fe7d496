package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rental-core/internal/domain/user"
	"rental-core/internal/handler/api"
	"rental-core/internal/handler/middleware"
	"rental-core/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Cart    *api.CartHandler
	Order   *api.OrderHandler
	Invoice *api.InvoiceHandler
	Payment *api.PaymentHandler
	Product *api.ProductHandler
	Review  *api.ReviewHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	customerOnly := authMiddleware.RequireRole(user.RoleCustomer)
	operators := authMiddleware.RequireRole(user.RoleVendor, user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Product.Availability},
				{Method: http.MethodGet, Path: "/:id/calendar", Handler: h.Product.Calendar},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListByProduct},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.RequireAuth(), customerOnly)
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
				{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
				{Method: http.MethodDelete, Path: "/items/:item_id", Handler: h.Cart.RemoveItem},
				{Method: http.MethodPost, Path: "/coupon", Handler: h.Cart.ApplyCoupon},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Order.Create, Mw: []gin.HandlerFunc{customerOnly}},
				{Method: http.MethodGet, Path: "", Handler: h.Order.List},
				{Method: http.MethodGet, Path: "/pending-pickups", Handler: h.Order.PendingPickups, Mw: []gin.HandlerFunc{operators}},
				{Method: http.MethodGet, Path: "/upcoming-returns", Handler: h.Order.UpcomingReturns, Mw: []gin.HandlerFunc{operators}},
				{Method: http.MethodGet, Path: "/overdue", Handler: h.Order.Overdue, Mw: []gin.HandlerFunc{operators}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Order.Confirm, Mw: []gin.HandlerFunc{customerOnly}},
				{Method: http.MethodPost, Path: "/:id/pickup", Handler: h.Order.Pickup, Mw: []gin.HandlerFunc{operators}},
				{Method: http.MethodPost, Path: "/:id/return", Handler: h.Order.Return, Mw: []gin.HandlerFunc{operators}},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Order.Complete, Mw: []gin.HandlerFunc{operators}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Order.Cancel},
			})
		}

		invoices := apiGroup.Group("/invoices")
		invoices.Use(authMiddleware.RequireAuth())
		{
			addRoutes(invoices, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Invoice.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Invoice.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Invoice.Get},
				{Method: http.MethodPost, Path: "/:id/post", Handler: h.Invoice.Post, Mw: []gin.HandlerFunc{operators}},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/create-order", Handler: h.Payment.CreateOrder, Mw: []gin.HandlerFunc{customerOnly}},
				{Method: http.MethodPost, Path: "/verify", Handler: h.Payment.Verify, Mw: []gin.HandlerFunc{customerOnly}},
				{Method: http.MethodPost, Path: "/cash", Handler: h.Payment.RecordCash, Mw: []gin.HandlerFunc{operators}},
				{Method: http.MethodGet, Path: "", Handler: h.Payment.List},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth(), customerOnly)
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
			})
		}
	}
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
			h = chainHandlers(append(r.Mw, r.Handler)...)
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

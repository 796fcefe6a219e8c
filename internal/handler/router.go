package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/api"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers mounted by NewRouter.
type Handlers struct {
	Auth      *api.AuthHandler
	Booking   *api.BookingHandler
	Inventory *api.InventoryHandler
	Archive   *api.ArchiveHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
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

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Catalogue is public; a valid token only widens what operators see
		catalogue := apiGroup.Group("")
		catalogue.Use(authMiddleware.OptionalAuth())
		addRoutes(catalogue, []route{
			{Method: http.MethodGet, Path: "/flights", Handler: h.Inventory.ListFlights},
			{Method: http.MethodGet, Path: "/flights/:id", Handler: h.Inventory.GetFlight},
			{Method: http.MethodGet, Path: "/packages", Handler: h.Inventory.ListOffers},
			{Method: http.MethodGet, Path: "/packages/:id", Handler: h.Inventory.GetOffer},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/flights", Handler: h.Booking.CreateFlightBooking},
				{Method: http.MethodPost, Path: "/packages", Handler: h.Booking.CreatePackageBooking},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMyBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.CancelBooking},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleOperator))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/flights", Handler: h.Inventory.CreateFlight},
				{Method: http.MethodPost, Path: "/flights/:id/status", Handler: h.Inventory.ChangeFlightStatus},
				{Method: http.MethodDelete, Path: "/flights/:id", Handler: h.Inventory.DeleteFlight},
				{Method: http.MethodPost, Path: "/packages", Handler: h.Inventory.CreateOffer},
				{Method: http.MethodDelete, Path: "/packages/:id", Handler: h.Inventory.DeleteOffer},

				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListAllBookings},
				{Method: http.MethodPost, Path: "/bookings/:id/confirm", Handler: h.Booking.ConfirmBooking},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.Booking.CancelBooking},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Booking.DeleteBooking},

				{Method: http.MethodPost, Path: "/archive/sweep", Handler: h.Archive.RunSweep},
				{Method: http.MethodGet, Path: "/archive/stats", Handler: h.Archive.Stats},
				{Method: http.MethodPost, Path: "/archive/:kind/bulk", Handler: h.Archive.BulkArchive},
				{Method: http.MethodPost, Path: "/archive/:kind/:id", Handler: h.Archive.ArchiveManually},
				{Method: http.MethodPost, Path: "/archive/:kind/:id/restore", Handler: h.Archive.Restore},
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

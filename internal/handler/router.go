package handler

import (
	"net/http"

	"locker-hub/internal/domain/user"
	"locker-hub/internal/handler/api"
	"locker-hub/internal/handler/middleware"
	"locker-hub/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Reservation  *api.ReservationHandler
	Locker       *api.LockerHandler
	Verification *api.VerificationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		otp := apiGroup.Group("/auth/otp")
		addRoutes(otp, []route{
			{Method: http.MethodPost, Path: "/request", Handler: h.Verification.RequestOTP},
			{Method: http.MethodPost, Path: "/verify", Handler: h.Verification.VerifyOTP},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/lockers", Handler: h.Locker.ListAvailable},
			{Method: http.MethodGet, Path: "/lockers/:id", Handler: h.Locker.Get},
			{Method: http.MethodGet, Path: "/locations/nearby", Handler: h.Locker.NearbyLocations},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/history", Handler: h.Reservation.History},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPost, Path: "/:id/extend", Handler: h.Reservation.Extend},
				{Method: http.MethodPost, Path: "/:id/release", Handler: h.Reservation.Release},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			adminOnly := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)}
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/lockers/:id/maintenance", Handler: h.Locker.StartMaintenance, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/lockers/:id/maintenance", Handler: h.Locker.EndMaintenance, Mw: adminOnly},
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

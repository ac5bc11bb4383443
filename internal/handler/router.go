package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"repairshop/internal/handler/api"
	"repairshop/internal/handler/middleware"
	"repairshop/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine             *gin.Engine
	Config             config.Config
	Logger             *middleware.Logger
	Gatherer           prometheus.Gatherer
	AuthMiddleware     *middleware.AuthMiddleware
	AppointmentHandler *api.AppointmentHandler
	OrderHandler       *api.OrderHandler
	CatalogHandler     *api.CatalogHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(p.AuthMiddleware.RequireAuth())
	{
		appointments := p.AppointmentHandler
		addRoutes(apiGroup.Group("/appointments"), []route{
			{Method: http.MethodPost, Path: "", Handler: appointments.Book},
			{Method: http.MethodGet, Path: "", Handler: appointments.Search},
			{Method: http.MethodDelete, Path: "/:id", Handler: appointments.Release},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: appointments.Cancel},
		})
		addRoutes(apiGroup.Group("/schedule"), []route{
			{Method: http.MethodGet, Path: "/booked-dates", Handler: appointments.BookedDates},
			{Method: http.MethodGet, Path: "/:date", Handler: appointments.DaySchedule},
		})

		orders := p.OrderHandler
		addRoutes(apiGroup.Group("/orders"), []route{
			{Method: http.MethodPost, Path: "", Handler: orders.Open},
			{Method: http.MethodGet, Path: "", Handler: orders.List},
			{Method: http.MethodGet, Path: "/:id", Handler: orders.Get},
			{Method: http.MethodGet, Path: "/:id/status", Handler: orders.Status},
			{Method: http.MethodGet, Path: "/:id/extract", Handler: orders.Extract},
			{Method: http.MethodPost, Path: "/:id/inspection", Handler: orders.StartInspection},
			{Method: http.MethodPost, Path: "/:id/service", Handler: orders.StartService},
			{Method: http.MethodPost, Path: "/:id/parts", Handler: orders.AddPart},
			{Method: http.MethodPost, Path: "/:id/finish", Handler: orders.Finish},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: orders.Cancel},
		})

		catalog := p.CatalogHandler
		addRoutes(apiGroup.Group("/products"), []route{
			{Method: http.MethodGet, Path: "", Handler: catalog.List},
			{Method: http.MethodPost, Path: "", Handler: catalog.Register},
			{Method: http.MethodPatch, Path: "/:id/price", Handler: catalog.UpdatePrice},
			{Method: http.MethodPost, Path: "/:id/restock", Handler: catalog.Restock},
		})
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/ledger", Handler: catalog.Ledger},
		})
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

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"wescoot-api/internal/handler/api"
	"wescoot-api/internal/handler/middleware"
	"wescoot-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, scooterHandler *api.ScooterHandler, paymentHandler *api.PaymentHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, scooterHandler, paymentHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, scooterHandler *api.ScooterHandler, paymentHandler *api.PaymentHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		scooters := apiGroup.Group("/scooters")
		{
			// /brands must be registered before /:id so gin does not
			// treat "brands" as a scooter id.
			addRoutes(scooters, []route{
				{Method: http.MethodGet, Path: "", Handler: scooterHandler.List},
				{Method: http.MethodGet, Path: "/brands", Handler: scooterHandler.Brands},
				{Method: http.MethodGet, Path: "/:id", Handler: scooterHandler.Get},
			})
		}

		payments := apiGroup.Group("/payments")
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/create-payment-intent", Handler: paymentHandler.CreateIntent},
				{Method: http.MethodPost, Path: "/confirm-payment", Handler: paymentHandler.Confirm},
				{Method: http.MethodGet, Path: "/payment-intent/:id", Handler: paymentHandler.GetIntent},
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

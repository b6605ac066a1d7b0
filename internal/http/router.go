package http

import (
	"net/http"
	"time"

	"callscreen_backend/internal/bank"
	"callscreen_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// availableRoutes is returned on 404 so webhook misconfigurations on the
// telephony side are easy to diagnose.
var availableRoutes = []string{
	"/",
	"/webhook/ovh",
	"/webhook/telegram",
	"/upload",
	"/clients",
	"/search/:phone",
	"/stats",
	"/clear",
	"/banks",
	"/test-telegram",
	"/fix-webhook",
	"/health",
	"/ping",
}

// NewRouter assembles the Gin engine: shared middleware, service-level
// endpoints, and every module's routes.
func NewRouter(app *App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(corsMiddleware(app.Config))
	engine.Use(httpkit.NewIPRateLimiter(rate.Limit(50), 100, app.Logger).RateLimit())

	root := engine.Group("/")

	registerServiceRoutes(root, app)

	rc := &RouterContext{Engine: engine, Root: root}
	for _, module := range app.Modules {
		module.RegisterRoutes(rc)
		app.Logger.Info("module routes registered", "module", module.Name())
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":            "route non trouvée",
			"available_routes": availableRoutes,
		})
	})

	return engine
}

func corsMiddleware(cfg RouterConfig) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if cfg.GetCORSAllowAll() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.GetCORSOrigins()
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	return cors.New(corsConfig)
}

func registerServiceRoutes(root *gin.RouterGroup, app *App) {
	root.GET("/", func(c *gin.Context) {
		stats := app.Directory.Stats()
		c.JSON(http.StatusOK, gin.H{
			"service":        "callscreen",
			"clients":        stats.TotalClients,
			"banks_detected": stats.BanksDetected,
			"line":           app.Config.GetLineNumber(),
			"webhook_url":    "/webhook/ovh?caller=*CALLING*&callee=*CALLED*&type=*EVENT*",
			"routes":         availableRoutes,
		})
	})

	root.GET("/health", func(c *gin.Context) {
		stats := app.Directory.Stats()
		c.JSON(http.StatusOK, gin.H{
			"status":         "healthy",
			"config_valid":   app.Notifier.Configured(),
			"clients":        stats.TotalClients,
			"banks_detected": stats.BanksDetected,
			"iban_detector": gin.H{
				"total_banks":             bank.TableSize(),
				"credit_agricole_caisses": bank.CreditAgricoleCount(),
				"other_banks":             bank.GeneralCount(),
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Keep-alive target for the hosting platform.
	root.GET("/ping", func(c *gin.Context) {
		stats := app.Directory.Stats()
		c.JSON(http.StatusOK, gin.H{
			"status":         "alive",
			"timestamp":      time.Now().Format(time.RFC3339),
			"clients":        stats.TotalClients,
			"banks_detected": stats.BanksDetected,
		})
	})
}

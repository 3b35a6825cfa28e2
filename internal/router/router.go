package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cookstemma/edge/config"
	"github.com/cookstemma/edge/internal/api"
	"github.com/cookstemma/edge/internal/middleware"
)

// Handlers holds everything SetupRouter mounts. Nil Images or WebOrigin leave the matching
// routes unregistered.
type Handlers struct {
	Health      *api.HealthHandler
	Preferences *api.PreferenceHandler
	Gateway     *api.GatewayHandler
	DeepLinks   *api.DeepLinkHandler
	Images      *api.ImageHandler
	WebOrigin   http.Handler
}

// SetupRouter configures the application routes
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.ErrorHandler(),
		middleware.RequestLogger(),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.LocaleGate(cfg.DefaultLocale),
	)

	h.Health.RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	h.Preferences.RegisterRoutes(v1)
	h.Gateway.RegisterRoutes(v1)
	h.DeepLinks.RegisterRoutes(v1, router)

	if h.Images != nil {
		h.Images.RegisterRoutes(router)
	}

	// Everything else belongs to the web client.
	if h.WebOrigin != nil {
		router.NoRoute(gin.WrapH(h.WebOrigin))
	} else {
		router.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		})
	}

	return router
}

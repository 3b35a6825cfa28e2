package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cookstemma/edge/config"
	"github.com/cookstemma/edge/internal/api"
	"github.com/cookstemma/edge/internal/apiclient"
	"github.com/cookstemma/edge/internal/middleware"
	"github.com/cookstemma/edge/internal/observability"
	"github.com/cookstemma/edge/internal/router"
	"github.com/cookstemma/edge/internal/service"
	"github.com/cookstemma/edge/internal/webp"
)

// Dependencies are the backing services the server runs on. Redis, Images and HealthDB are
// optional.
type Dependencies struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Images   webp.ObjectStore
	HealthDB api.HealthCheck
}

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
}

// New builds the services, handlers and routes for cfg.
func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	tokens := service.NewTokenService(cfg.JWTSecret)
	gateway := service.NewGatewayService(apiclient.New(cfg.BackendURL))
	prefs := service.NewPreferenceService(deps.DB, deps.Redis)

	checks := map[string]api.HealthCheck{}
	if deps.HealthDB != nil {
		checks["database"] = deps.HealthDB
	}

	var limiter *middleware.RateLimiter
	if deps.Redis != nil {
		limiter = middleware.NewToggleRateLimiter(deps.Redis, cfg.ToggleRateLimit, cfg.ToggleRateWindow)
		checks["redis"] = func(ctx context.Context) error { return deps.Redis.Ping(ctx).Err() }
	}

	handlers := router.Handlers{
		Health:      api.NewHealthHandler(checks),
		Preferences: api.NewPreferenceHandler(prefs, tokens),
		Gateway:     api.NewGatewayHandler(gateway, tokens, limiter),
		DeepLinks:   api.NewDeepLinkHandler(cfg.DefaultLocale),
	}
	if deps.Images != nil {
		origin := webp.NewOrigin(deps.Images, cfg.S3BucketName, webp.NewTranscoder())
		handlers.Images = api.NewImageHandler(origin)
	}
	if cfg.WebOriginURL != "" {
		proxy, err := router.NewWebOriginProxy(cfg.WebOriginURL)
		if err != nil {
			return nil, err
		}
		handlers.WebOrigin = proxy
	}

	return &Server{
		cfg:    cfg,
		router: router.SetupRouter(cfg, handlers),
	}, nil
}

// Handler exposes the routes, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address and blocks until the server stops.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	observability.GlobalLogger.Info("starting server", slog.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}

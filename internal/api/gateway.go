package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cookstemma/edge/internal/middleware"
	"github.com/cookstemma/edge/internal/service"
	"github.com/cookstemma/edge/internal/types"
)

// GatewayHandler forwards like, save and follow toggles to the backend
type GatewayHandler struct {
	gateway     service.IGatewayService
	validator   middleware.TokenValidator
	rateLimiter *middleware.RateLimiter
}

// NewGatewayHandler creates a gateway handler. A nil rate limiter disables rate limiting.
func NewGatewayHandler(gateway service.IGatewayService, validator middleware.TokenValidator, rateLimiter *middleware.RateLimiter) *GatewayHandler {
	return &GatewayHandler{gateway: gateway, validator: validator, rateLimiter: rateLimiter}
}

func (h *GatewayHandler) RegisterRoutes(router *gin.RouterGroup) {
	toggles := router.Group("")
	toggles.Use(middleware.AuthMiddleware(h.validator))
	if h.rateLimiter != nil {
		toggles.Use(h.rateLimiter.RateLimitMiddleware())
	}

	routes := map[string]service.ToggleKind{
		"/logs/:id/like":    service.ToggleLogLike,
		"/logs/:id/save":    service.ToggleLogSave,
		"/recipes/:id/save": service.ToggleRecipeSave,
		"/users/:id/follow": service.ToggleUserFollow,
	}
	for path, kind := range routes {
		toggles.POST(path, h.Toggle(kind, true))
		toggles.DELETE(path, h.Toggle(kind, false))
	}
}

// Toggle returns the handler that sets kind to active on the entity named by :id.
func (h *GatewayHandler) Toggle(kind service.ToggleKind, active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		token := c.GetString(middleware.ContextAccessToken)
		if err := h.gateway.Toggle(c.Request.Context(), token, kind, id, active); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.ToggleResponse{ID: id, Kind: string(kind), Active: active})
	}
}

package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cookstemma/edge/internal/middleware"
	"github.com/cookstemma/edge/internal/observability"
	"github.com/cookstemma/edge/internal/preferences"
	"github.com/cookstemma/edge/internal/types"
)

// statusFor maps an error to the HTTP status the edge answers with. Failures of the backend
// itself surface as 502 so clients can tell them apart from edge failures.
func statusFor(err error) int {
	if errors.Is(err, preferences.ErrInvalidValue) {
		return http.StatusBadRequest
	}
	var apiErr *types.APIError
	if !errors.As(err, &apiErr) {
		return http.StatusInternalServerError
	}
	switch apiErr.Kind {
	case types.KindUnauthorized:
		if apiErr.Status == http.StatusForbidden {
			return http.StatusForbidden
		}
		return http.StatusUnauthorized
	case types.KindNotFound:
		return http.StatusNotFound
	case types.KindServer, types.KindNetwork, types.KindDecoding:
		return http.StatusBadGateway
	}
	if apiErr.Status >= 400 && apiErr.Status < 500 {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		observability.GlobalLogger.ErrorContext(c.Request.Context(), "request failed",
			slog.String("path", c.FullPath()),
			slog.Int("status", status),
			slog.String("error", err.Error()),
		)
	}

	message := types.UserMessage(err)
	if status == http.StatusBadRequest {
		message = err.Error()
	}
	c.JSON(status, gin.H{"error": message})
}

// currentUserID returns the caller set by AuthMiddleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

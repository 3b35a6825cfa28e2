package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cookstemma/edge/internal/apiclient"
	"github.com/cookstemma/edge/internal/observability"
	"github.com/cookstemma/edge/internal/types"
)

// ToggleKind names a social toggle the gateway forwards.
type ToggleKind string

const (
	ToggleLogLike    ToggleKind = "log_like"
	ToggleLogSave    ToggleKind = "log_save"
	ToggleRecipeSave ToggleKind = "recipe_save"
	ToggleUserFollow ToggleKind = "user_follow"
)

// GatewayService forwards toggles to the backend on behalf of the caller.
type GatewayService struct {
	client *apiclient.Client
}

func NewGatewayService(client *apiclient.Client) *GatewayService {
	return &GatewayService{client: client}
}

// Toggle sets the toggle of kind on entity id to active, authenticating as token.
func (s *GatewayService) Toggle(ctx context.Context, token string, kind ToggleKind, id uuid.UUID, active bool) error {
	c := s.client.WithToken(token)

	var err error
	switch kind {
	case ToggleLogLike:
		err = c.SetLogLiked(ctx, id, active)
	case ToggleLogSave:
		err = c.SetLogSaved(ctx, id, active)
	case ToggleRecipeSave:
		err = c.SetRecipeSaved(ctx, id, active)
	case ToggleUserFollow:
		err = c.SetFollowing(ctx, id, active)
	default:
		return fmt.Errorf("unknown toggle kind %q", kind)
	}

	outcome := "ok"
	if err != nil {
		outcome = string(types.KindOf(err))
		observability.GlobalLogger.WarnContext(ctx, "backend toggle failed",
			slog.String("kind", string(kind)),
			slog.String("id", id.String()),
			slog.Bool("active", active),
			slog.String("error", err.Error()),
		)
	}
	observability.GatewayToggles.WithLabelValues(string(kind), outcome).Inc()
	return err
}

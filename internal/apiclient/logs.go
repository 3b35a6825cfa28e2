package apiclient

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/cookstemma/edge/internal/models"
	"github.com/cookstemma/edge/internal/types"
)

const logsPath = "/api/v1/logs"

// GetLogs pages through recent cooking logs. A log with an out-of-range rating or unknown
// outcome fails the whole page as a decoding error.
func (c *Client) GetLogs(ctx context.Context, cursor string) (types.Page[models.CookingLog], error) {
	page, err := getCursorPage[models.CookingLog](ctx, c, logsPath, cursorQuery(cursor))
	if err != nil {
		return types.Page[models.CookingLog]{}, err
	}
	for i := range page.Content {
		if err := validLog(&page.Content[i]); err != nil {
			return types.Page[models.CookingLog]{}, err
		}
	}
	return page, nil
}

func (c *Client) GetLog(ctx context.Context, id uuid.UUID) (*models.CookingLog, error) {
	var log models.CookingLog
	if err := c.do(ctx, http.MethodGet, idPath(logsPath, id, ""), nil, nil, &log); err != nil {
		return nil, err
	}
	if err := validLog(&log); err != nil {
		return nil, err
	}
	return &log, nil
}

func validLog(log *models.CookingLog) error {
	if err := log.Validate(); err != nil {
		return &types.APIError{Kind: types.KindDecoding, Err: err}
	}
	return nil
}

// SetLogLiked likes or unlikes a cooking log.
func (c *Client) SetLogLiked(ctx context.Context, id uuid.UUID, liked bool) error {
	return c.setToggle(ctx, idPath(logsPath, id, "/like"), liked)
}

// SetLogSaved bookmarks or un-bookmarks a cooking log.
func (c *Client) SetLogSaved(ctx context.Context, id uuid.UUID, saved bool) error {
	return c.setToggle(ctx, idPath(logsPath, id, "/save"), saved)
}

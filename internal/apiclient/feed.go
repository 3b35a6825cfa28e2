package apiclient

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/cookstemma/edge/internal/models"
	"github.com/cookstemma/edge/internal/types"
)

// GetFeed returns one page of the signed-in user's home feed.
func (c *Client) GetFeed(ctx context.Context, cursor string) (types.Page[models.FeedItem], error) {
	return getCursorPage[models.FeedItem](ctx, c, "/api/v1/feed", cursorQuery(cursor))
}

// GetHashtagFeed returns recipes and logs tagged with name.
func (c *Client) GetHashtagFeed(ctx context.Context, name, cursor string) (types.Page[models.FeedItem], error) {
	return getCursorPage[models.FeedItem](ctx, c, "/api/v1/hashtags/"+url.PathEscape(name)+"/feed", cursorQuery(cursor))
}

// SearchRecipes runs a keyword search over recipes.
func (c *Client) SearchRecipes(ctx context.Context, query, cursor string) (types.Page[models.Recipe], error) {
	q := cursorQuery(cursor)
	q.Set("q", query)
	return getCursorPage[models.Recipe](ctx, c, "/api/v1/search/recipes", q)
}

func idPath(prefix string, id uuid.UUID, suffix string) string {
	return prefix + "/" + id.String() + suffix
}

package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/cookstemma/edge/internal/models"
	"github.com/cookstemma/edge/internal/types"
)

const usersPath = "/api/v1/users"

func (c *Client) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, idPath(usersPath, id, ""), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetMe returns the profile of the token's owner.
func (c *Client) GetMe(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, usersPath+"/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SetFollowing follows or unfollows a user.
func (c *Client) SetFollowing(ctx context.Context, id uuid.UUID, following bool) error {
	return c.setToggle(ctx, idPath(usersPath, id, "/follow"), following)
}

// GetUserRecipes pages through a user's recipes. The endpoint is offset based; cursor is the
// decimal page number from a previous page, empty for the first.
func (c *Client) GetUserRecipes(ctx context.Context, id uuid.UUID, cursor string) (types.Page[models.Recipe], error) {
	q, err := sliceQuery(cursor)
	if err != nil {
		return types.Page[models.Recipe]{}, err
	}
	return getSlicePage[models.Recipe](ctx, c, idPath(usersPath, id, "/recipes"), q)
}

// GetUserLogs pages through a user's cooking logs. See GetUserRecipes for cursor semantics.
func (c *Client) GetUserLogs(ctx context.Context, id uuid.UUID, cursor string) (types.Page[models.CookingLog], error) {
	q, err := sliceQuery(cursor)
	if err != nil {
		return types.Page[models.CookingLog]{}, err
	}
	return getSlicePage[models.CookingLog](ctx, c, idPath(usersPath, id, "/logs"), q)
}

func sliceQuery(cursor string) (url.Values, error) {
	page := 0
	if cursor != "" {
		n, err := strconv.Atoi(cursor)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid page cursor %q", cursor)
		}
		page = n
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(DefaultPageSize))
	return q, nil
}

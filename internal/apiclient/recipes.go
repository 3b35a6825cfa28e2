package apiclient

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/cookstemma/edge/internal/models"
	"github.com/cookstemma/edge/internal/types"
)

const recipesPath = "/api/v1/recipes"

// GetRecipes pages through the recipe catalogue, newest first.
func (c *Client) GetRecipes(ctx context.Context, cursor string) (types.Page[models.Recipe], error) {
	return getCursorPage[models.Recipe](ctx, c, recipesPath, cursorQuery(cursor))
}

func (c *Client) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := c.do(ctx, http.MethodGet, idPath(recipesPath, id, ""), nil, nil, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// SetRecipeSaved bookmarks or un-bookmarks a recipe.
func (c *Client) SetRecipeSaved(ctx context.Context, id uuid.UUID, saved bool) error {
	return c.setToggle(ctx, idPath(recipesPath, id, "/save"), saved)
}

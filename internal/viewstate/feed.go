package viewstate

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/cookstemma/edge/internal/models"
	"github.com/cookstemma/edge/internal/optimistic"
	"github.com/cookstemma/edge/internal/types"
)

// ErrItemNotLoaded is returned when toggling an item that is not in the current list.
var ErrItemNotLoaded = errors.New("item not loaded")

// FeedAPI is the backend surface the feed screen needs.
type FeedAPI interface {
	GetFeed(ctx context.Context, cursor string) (types.Page[models.FeedItem], error)
	SetLogLiked(ctx context.Context, id uuid.UUID, liked bool) error
	SetLogSaved(ctx context.Context, id uuid.UUID, saved bool) error
	SetRecipeSaved(ctx context.Context, id uuid.UUID, saved bool) error
}

// FeedState is the home feed.
type FeedState struct {
	*Paginator[models.FeedItem]
	api FeedAPI
}

func NewFeedState(api FeedAPI) *FeedState {
	return &FeedState{
		Paginator: NewPaginator[models.FeedItem](api.GetFeed, models.FeedItem.Key),
		api:       api,
	}
}

// ToggleLike likes or unlikes a cooking log in the feed. The backend error is returned after the
// item has been rolled back; the feed's ErrorMessage is left untouched.
func (s *FeedState) ToggleLike(ctx context.Context, logID uuid.UUID) error {
	key := models.FeedKey(models.FeedItemLog, logID)
	if _, ok := s.Get(key); !ok {
		return ErrItemNotLoaded
	}

	target := toggleTarget(s.Paginator, key,
		func(item models.FeedItem) optimistic.ToggleState {
			if item.Log == nil {
				return optimistic.ToggleState{}
			}
			return optimistic.ToggleState{Active: item.Log.IsLiked, Count: item.Log.LikeCount}
		},
		func(item models.FeedItem, st optimistic.ToggleState) models.FeedItem {
			if item.Log == nil {
				return item
			}
			log := *item.Log
			log.IsLiked, log.LikeCount = st.Active, st.Count
			item.Log = &log
			return item
		},
	)
	return optimistic.Apply(ctx, optimistic.KindLike, target, func(ctx context.Context, liked bool) error {
		return s.api.SetLogLiked(ctx, logID, liked)
	})
}

// ToggleSave bookmarks or un-bookmarks a recipe or log in the feed. Logs carry no save counter,
// so only recipes move a count.
func (s *FeedState) ToggleSave(ctx context.Context, itemType models.FeedItemType, id uuid.UUID) error {
	key := models.FeedKey(itemType, id)
	if _, ok := s.Get(key); !ok {
		return ErrItemNotLoaded
	}

	target := toggleTarget(s.Paginator, key,
		func(item models.FeedItem) optimistic.ToggleState {
			switch {
			case item.Recipe != nil:
				return optimistic.ToggleState{Active: item.Recipe.IsSaved, Count: item.Recipe.SaveCount}
			case item.Log != nil:
				return optimistic.ToggleState{Active: item.Log.IsSaved}
			}
			return optimistic.ToggleState{}
		},
		func(item models.FeedItem, st optimistic.ToggleState) models.FeedItem {
			switch {
			case item.Recipe != nil:
				recipe := *item.Recipe
				recipe.IsSaved, recipe.SaveCount = st.Active, st.Count
				item.Recipe = &recipe
			case item.Log != nil:
				log := *item.Log
				log.IsSaved = st.Active
				item.Log = &log
			}
			return item
		},
	)
	return optimistic.Apply(ctx, optimistic.KindSave, target, func(ctx context.Context, saved bool) error {
		if itemType == models.FeedItemRecipe {
			return s.api.SetRecipeSaved(ctx, id, saved)
		}
		return s.api.SetLogSaved(ctx, id, saved)
	})
}

package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// FeedItemType discriminates the FeedItem union.
type FeedItemType string

const (
	FeedItemRecipe FeedItemType = "RECIPE"
	FeedItemLog    FeedItemType = "LOG"
)

// ErrUnknownFeedItemType is returned when decoding a feed item with an unrecognized type.
var ErrUnknownFeedItemType = errors.New("unknown feed item type")

// FeedItem is either a Recipe or a CookingLog. Exactly one of Recipe and Log is set.
type FeedItem struct {
	Type   FeedItemType
	Recipe *Recipe
	Log    *CookingLog
}

func RecipeItem(r Recipe) FeedItem { return FeedItem{Type: FeedItemRecipe, Recipe: &r} }

func LogItem(l CookingLog) FeedItem { return FeedItem{Type: FeedItemLog, Log: &l} }

// ID returns the id of the wrapped entity.
func (f FeedItem) ID() uuid.UUID {
	switch {
	case f.Recipe != nil:
		return f.Recipe.ID
	case f.Log != nil:
		return f.Log.ID
	}
	return uuid.Nil
}

// Key identifies the item across pages. Recipes and logs live in separate id spaces.
func (f FeedItem) Key() string {
	return FeedKey(f.Type, f.ID())
}

// FeedKey is the Key of the item of type t with the given id.
func FeedKey(t FeedItemType, id uuid.UUID) string {
	return string(t) + ":" + id.String()
}

func (f FeedItem) MarshalJSON() ([]byte, error) {
	switch f.Type {
	case FeedItemRecipe:
		if f.Recipe == nil {
			return nil, fmt.Errorf("feed item %s has no recipe", f.Type)
		}
		return json.Marshal(struct {
			Type FeedItemType `json:"type"`
			*Recipe
		}{f.Type, f.Recipe})
	case FeedItemLog:
		if f.Log == nil {
			return nil, fmt.Errorf("feed item %s has no log", f.Type)
		}
		return json.Marshal(struct {
			Type FeedItemType `json:"type"`
			*CookingLog
		}{f.Type, f.Log})
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFeedItemType, f.Type)
}

func (f *FeedItem) UnmarshalJSON(data []byte) error {
	var head struct {
		Type FeedItemType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	switch head.Type {
	case FeedItemRecipe:
		var r Recipe
		if err := json.Unmarshal(data, &r); err != nil {
			return err
		}
		*f = RecipeItem(r)
	case FeedItemLog:
		var l CookingLog
		if err := json.Unmarshal(data, &l); err != nil {
			return err
		}
		*f = LogItem(l)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFeedItemType, head.Type)
	}
	return nil
}

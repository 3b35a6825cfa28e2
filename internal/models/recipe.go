package models

import (
	"time"

	"github.com/google/uuid"
)

// CookingTimeRange is the coarse bucket a recipe's total time falls into.
type CookingTimeRange string

const (
	CookingTimeUnder15 CookingTimeRange = "UNDER_15_MIN"
	CookingTime15To30  CookingTimeRange = "MIN_15_TO_30"
	CookingTime30To60  CookingTimeRange = "MIN_30_TO_60"
	CookingTimeOver60  CookingTimeRange = "OVER_60_MIN"
)

// Valid reports whether r is a known bucket.
func (r CookingTimeRange) Valid() bool {
	switch r {
	case CookingTimeUnder15, CookingTime15To30, CookingTime30To60, CookingTimeOver60:
		return true
	}
	return false
}

// IngredientType groups ingredients in the recipe view.
type IngredientType string

const (
	IngredientMain      IngredientType = "MAIN"
	IngredientSecondary IngredientType = "SECONDARY"
	IngredientSeasoning IngredientType = "SEASONING"
)

type Ingredient struct {
	Name   string         `json:"name"`
	Amount string         `json:"amount,omitempty"`
	Type   IngredientType `json:"type,omitempty"`
}

type Step struct {
	Order       int    `json:"order"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Recipe is immutable once fetched except for IsSaved and SaveCount.
type Recipe struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Images      []string         `json:"images"`
	Servings    int              `json:"servings"`
	CookingTime CookingTimeRange `json:"cookingTimeRange,omitempty"`
	Ingredients []Ingredient     `json:"ingredients,omitempty"`
	Steps       []Step           `json:"steps,omitempty"`
	Hashtags    []string         `json:"hashtags,omitempty"`
	Author      UserSummary      `json:"author"`
	SaveCount   int              `json:"saveCount"`
	CookCount   int              `json:"cookCount"`
	IsSaved     bool             `json:"isSaved"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// RecipeSummary is the recipe reference embedded in a cooking log.
type RecipeSummary struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
}

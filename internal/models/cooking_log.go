package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome is how a cooking attempt turned out.
type Outcome string

const (
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomePartial Outcome = "PARTIAL"
	OutcomeFailed  Outcome = "FAILED"
)

func (o Outcome) Valid() bool {
	switch o {
	case OutcomeSuccess, OutcomePartial, OutcomeFailed:
		return true
	}
	return false
}

const (
	MinRating = 1
	MaxRating = 5
)

var ErrInvalidCookingLog = errors.New("invalid cooking log")

// CookingLog is a user's record of cooking a recipe.
type CookingLog struct {
	ID           uuid.UUID      `json:"id"`
	Author       UserSummary    `json:"author"`
	Images       []string       `json:"images"`
	Rating       int            `json:"rating"`
	Outcome      Outcome        `json:"outcome"`
	Content      string         `json:"content,omitempty"`
	Recipe       *RecipeSummary `json:"recipe,omitempty"`
	Hashtags     []string       `json:"hashtags,omitempty"`
	LikeCount    int            `json:"likeCount"`
	CommentCount int            `json:"commentCount"`
	IsLiked      bool           `json:"isLiked"`
	IsSaved      bool           `json:"isSaved"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// Validate checks the rating range and outcome.
func (l *CookingLog) Validate() error {
	if l.Rating < MinRating || l.Rating > MaxRating {
		return fmt.Errorf("%w: rating %d outside %d..%d", ErrInvalidCookingLog, l.Rating, MinRating, MaxRating)
	}
	if !l.Outcome.Valid() {
		return fmt.Errorf("%w: unknown outcome %q", ErrInvalidCookingLog, l.Outcome)
	}
	return nil
}

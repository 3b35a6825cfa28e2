package models

import "github.com/google/uuid"

// SocialLinks are the optional external profiles a user lists.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Website   string `json:"website,omitempty"`
}

// User is a profile as returned by the backend. Counts are denormalized.
type User struct {
	ID             uuid.UUID   `json:"id"`
	Username       string      `json:"username"`
	DisplayName    string      `json:"displayName"`
	AvatarURL      string      `json:"avatarUrl,omitempty"`
	Bio            string      `json:"bio,omitempty"`
	Level          int         `json:"level"`
	XP             int         `json:"xp"`
	FollowerCount  int         `json:"followerCount"`
	FollowingCount int         `json:"followingCount"`
	IsFollowing    bool        `json:"isFollowing"`
	SocialLinks    SocialLinks `json:"socialLinks"`
}

// UserSummary is the author block embedded in recipes and logs.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
}

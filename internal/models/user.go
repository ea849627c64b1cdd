package models

import "time"

// User represents a player account, created lazily on first login.
// Email is the natural key; username is a mutable display name.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Stats holds per-user aggregates derived from progress records
type Stats struct {
	TotalStars       int `json:"total_stars"`
	StoriesCompleted int `json:"stories_completed"`
}

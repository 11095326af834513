package models

import "time"

// SocialStat is one point of a per-platform follower/view time series.
type SocialStat struct {
	ID        int64     `json:"id,omitempty"`
	Platform  string    `json:"platform" validate:"required"`
	Followers int       `json:"followers" validate:"min=0"`
	Views     int       `json:"views" validate:"min=0"`
	Date      time.Time `json:"date" validate:"required"`
}

// SocialPatch is a partial update; nil fields are left unchanged.
type SocialPatch struct {
	Platform  *string
	Followers *int
	Views     *int
	Date      *time.Time
}

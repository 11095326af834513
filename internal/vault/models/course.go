package models

import "time"

// CourseStatus tracks course completion.
type CourseStatus string

const (
	CourseNotStarted CourseStatus = "not-started"
	CourseInProgress CourseStatus = "in-progress"
	CourseCompleted  CourseStatus = "completed"
)

// StatusForProgress derives the course status from a completion percentage.
func StatusForProgress(pct int) CourseStatus {
	switch {
	case pct >= 100:
		return CourseCompleted
	case pct > 0:
		return CourseInProgress
	default:
		return CourseNotStarted
	}
}

// Course is an online course being tracked.
type Course struct {
	ID                   int64        `json:"id,omitempty"`
	Name                 string       `json:"name" validate:"required"`
	Platform             string       `json:"platform" validate:"required"`
	Link                 string       `json:"link"`
	CompletionPercentage int          `json:"completionPercentage" validate:"min=0,max=100"`
	Status               CourseStatus `json:"status" validate:"required,oneof=not-started in-progress completed"`
	Deadline             *time.Time   `json:"deadline,omitempty"`
	IsPinned             bool         `json:"isPinned,omitempty"`
	IsHighlighted        bool         `json:"isHighlighted,omitempty"`
}

// CoursePatch is a partial update; nil fields are left unchanged.
type CoursePatch struct {
	Name                 *string
	Platform             *string
	Link                 *string
	CompletionPercentage *int
	Status               *CourseStatus
	Deadline             **time.Time
	IsPinned             *bool
	IsHighlighted        *bool
}

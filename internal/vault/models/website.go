package models

// Priority ranks a website for display ordering.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// rank maps a priority to its sort weight (high sorts first).
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// Website is a bookmarked site with ordered tags.
type Website struct {
	ID            int64    `json:"id,omitempty"`
	URL           string   `json:"url" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Tags          []string `json:"tags"`
	Priority      Priority `json:"priority" validate:"required,oneof=low medium high"`
	Notes         string   `json:"notes,omitempty"`
	IsPinned      bool     `json:"isPinned,omitempty"`
	IsHighlighted bool     `json:"isHighlighted,omitempty"`
}

// WebsitePatch is a partial update; nil fields are left unchanged.
type WebsitePatch struct {
	URL           *string
	Name          *string
	Tags          *[]string
	Priority      *Priority
	Notes         *string
	IsPinned      *bool
	IsHighlighted *bool
}

package models

import "time"

// RoadmapItem is one milestone in a habit's improvement plan. Items for
// a habit carry order values 0..4 which define the display sequence.
type RoadmapItem struct {
	ID          string     `json:"id"`
	HabitID     string     `json:"habit_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Order       int        `json:"order"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   bool       `json:"completed"`
}

// ResourceType classifies a suggested resource link.
type ResourceType string

const (
	ResourceArticle ResourceType = "article"
	ResourceVideo   ResourceType = "video"
	ResourceCourse  ResourceType = "course"
	ResourcePodcast ResourceType = "podcast"
	ResourceTool    ResourceType = "tool"
)

// Resource is an external link suggested for a habit.
type Resource struct {
	ID       string       `json:"id"`
	HabitID  string       `json:"habit_id"`
	Title    string       `json:"title"`
	URL      string       `json:"url"`
	Type     ResourceType `json:"type"`
	Provider *string      `json:"provider,omitempty"`
	Notes    *string      `json:"notes,omitempty"`
}

package models

import "time"

// Habit represents a tracked behavior with a target weekly frequency.
// Habits are immutable after creation.
type Habit struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Description       *string    `json:"description,omitempty"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	TargetDaysPerWeek int        `json:"target_days_per_week"`
	Progress          float64    `json:"progress"`
	CreatedAt         time.Time  `json:"created_at"`
}

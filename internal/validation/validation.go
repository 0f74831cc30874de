// Package validation checks entity invariants before they reach the
// store. Referential integrity of habit references is advisory and not
// checked here.
package validation

import (
	"fmt"
	"strings"

	"github.com/habitgenius/habitgenius/internal/constants"
	"github.com/habitgenius/habitgenius/internal/models"
)

// ValidateHabit checks the invariants of a habit about to be created.
func ValidateHabit(h models.Habit) error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("habit name must not be empty")
	}
	if err := ValidateTargetDays(h.TargetDaysPerWeek); err != nil {
		return err
	}
	if h.Progress < 0 || h.Progress > 1 {
		return fmt.Errorf("progress must be between 0 and 1, got %v", h.Progress)
	}
	return nil
}

// ValidateTargetDays checks the weekly target frequency bounds.
func ValidateTargetDays(n int) error {
	if n < constants.MinTargetDaysPerWeek || n > constants.MaxTargetDaysPerWeek {
		return fmt.Errorf("target days per week must be between %d and %d, got %d",
			constants.MinTargetDaysPerWeek, constants.MaxTargetDaysPerWeek, n)
	}
	return nil
}

// ValidateProgress checks a progress check-in payload.
func ValidateProgress(p models.Progress) error {
	if p.HabitID == "" {
		return fmt.Errorf("progress record must reference a habit")
	}
	return nil
}

// ValidateResourceType checks a resource type against the known set.
func ValidateResourceType(t models.ResourceType) error {
	switch t {
	case models.ResourceArticle, models.ResourceVideo, models.ResourceCourse,
		models.ResourcePodcast, models.ResourceTool:
		return nil
	default:
		return fmt.Errorf("unknown resource type %q", t)
	}
}

// ValidateRoadmapOrders checks that a habit's roadmap carries exactly
// the orders 0..4, each once.
func ValidateRoadmapOrders(items []models.RoadmapItem) error {
	if len(items) != constants.RoadmapLength {
		return fmt.Errorf("roadmap must have exactly %d items, got %d", constants.RoadmapLength, len(items))
	}
	seen := make(map[int]bool, len(items))
	for _, item := range items {
		if item.Order < 0 || item.Order >= constants.RoadmapLength {
			return fmt.Errorf("roadmap order %d out of range 0..%d", item.Order, constants.RoadmapLength-1)
		}
		if seen[item.Order] {
			return fmt.Errorf("duplicate roadmap order %d", item.Order)
		}
		seen[item.Order] = true
	}
	return nil
}

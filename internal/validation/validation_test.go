package validation

import (
	"testing"

	"github.com/habitgenius/habitgenius/internal/generator"
	"github.com/habitgenius/habitgenius/internal/models"
)

func validHabit() models.Habit {
	return models.Habit{
		ID:                "habit-1",
		Name:              "Read 30 minutes a day",
		TargetDaysPerWeek: 5,
		Progress:          0,
	}
}

func TestValidateHabit(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Habit)
		wantErr bool
	}{
		{"valid habit", func(h *models.Habit) {}, false},
		{"empty name", func(h *models.Habit) { h.Name = "" }, true},
		{"whitespace name", func(h *models.Habit) { h.Name = "   " }, true},
		{"target too low", func(h *models.Habit) { h.TargetDaysPerWeek = 0 }, true},
		{"target too high", func(h *models.Habit) { h.TargetDaysPerWeek = 8 }, true},
		{"target at bounds", func(h *models.Habit) { h.TargetDaysPerWeek = 7 }, false},
		{"progress below zero", func(h *models.Habit) { h.Progress = -0.1 }, true},
		{"progress above one", func(h *models.Habit) { h.Progress = 1.1 }, true},
		{"progress complete", func(h *models.Habit) { h.Progress = 1.0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := validHabit()
			tt.mutate(&h)

			err := ValidateHabit(h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHabit() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateProgress(t *testing.T) {
	if err := ValidateProgress(models.Progress{HabitID: "h"}); err != nil {
		t.Errorf("ValidateProgress() with habit reference = %v, want nil", err)
	}
	if err := ValidateProgress(models.Progress{}); err == nil {
		t.Error("ValidateProgress() without habit reference should fail")
	}
}

func TestValidateResourceType(t *testing.T) {
	for _, rt := range []models.ResourceType{
		models.ResourceArticle, models.ResourceVideo, models.ResourceCourse,
		models.ResourcePodcast, models.ResourceTool,
	} {
		if err := ValidateResourceType(rt); err != nil {
			t.Errorf("ValidateResourceType(%q) = %v, want nil", rt, err)
		}
	}

	if err := ValidateResourceType("webinar"); err == nil {
		t.Error("ValidateResourceType(\"webinar\") should fail")
	}
}

func TestValidateRoadmapOrders(t *testing.T) {
	t.Run("generated roadmap is valid", func(t *testing.T) {
		items, _ := generator.Generate("h", "anything", nil)
		if err := ValidateRoadmapOrders(items); err != nil {
			t.Errorf("ValidateRoadmapOrders() on generated roadmap = %v, want nil", err)
		}
	})

	t.Run("wrong length", func(t *testing.T) {
		items, _ := generator.Generate("h", "anything", nil)
		if err := ValidateRoadmapOrders(items[:4]); err == nil {
			t.Error("ValidateRoadmapOrders() with 4 items should fail")
		}
	})

	t.Run("duplicate order", func(t *testing.T) {
		items, _ := generator.Generate("h", "anything", nil)
		items[4].Order = 0
		if err := ValidateRoadmapOrders(items); err == nil {
			t.Error("ValidateRoadmapOrders() with duplicate order should fail")
		}
	})

	t.Run("order out of range", func(t *testing.T) {
		items, _ := generator.Generate("h", "anything", nil)
		items[4].Order = 5
		if err := ValidateRoadmapOrders(items); err == nil {
			t.Error("ValidateRoadmapOrders() with order 5 should fail")
		}
	})
}

package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitgenius/habitgenius/internal/constants"
	"github.com/habitgenius/habitgenius/internal/models"
	"github.com/habitgenius/habitgenius/internal/streak"
	"github.com/habitgenius/habitgenius/internal/validation"
)

type ProgressCmd struct {
	Add  ProgressAddCmd  `cmd:"" help:"Record a check-in for a habit."`
	List ProgressListCmd `cmd:"" help:"Show a habit's check-ins and current streak."`
}

type ProgressAddCmd struct {
	HabitID string `arg:"" help:"Habit id."`
	Note    string `help:"Optional note for this check-in." default:""`
	Date    string `help:"Check-in date in YYYY-MM-DD format (default: now)." default:""`
}

func (c *ProgressAddCmd) Run(ctx *Context) error {
	now := time.Now().UTC()
	takenAt := now
	if c.Date != "" {
		day, err := time.ParseInLocation(constants.DateFormat, c.Date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", c.Date)
		}
		takenAt = day
	}

	record := models.Progress{
		ID:        uuid.New().String(),
		HabitID:   c.HabitID,
		TakenAt:   takenAt,
		CreatedAt: now,
	}
	if c.Note != "" {
		note := c.Note
		record.Note = &note
	}

	if err := validation.ValidateProgress(record); err != nil {
		return err
	}

	if err := ctx.Store.AddProgress(record); err != nil {
		return err
	}

	fmt.Printf("Recorded check-in %s for habit %s\n", record.ID, c.HabitID)
	return nil
}

type ProgressListCmd struct {
	HabitID string `arg:"" help:"Habit id."`
}

func (c *ProgressListCmd) Run(ctx *Context) error {
	records, err := ctx.Store.GetProgressForHabit(c.HabitID)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No check-ins found for this habit.")
		fmt.Println("Current streak: 0 days")
		return nil
	}

	for _, record := range records {
		fmt.Printf("%s  %s", record.EffectiveTime().Local().Format(constants.DateFormat), record.ID)
		if record.Note != nil {
			fmt.Printf("  %s", *record.Note)
		}
		fmt.Println()
	}

	fmt.Printf("Current streak: %d days\n", streak.Compute(records, time.Now()))
	return nil
}

package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitgenius/habitgenius/internal/constants"
	"github.com/habitgenius/habitgenius/internal/generator"
	"github.com/habitgenius/habitgenius/internal/models"
	"github.com/habitgenius/habitgenius/internal/validation"
)

type HabitCmd struct {
	Add       HabitAddCmd       `cmd:"" help:"Add a new habit with a generated roadmap."`
	List      HabitListCmd      `cmd:"" help:"List habits."`
	Roadmap   HabitRoadmapCmd   `cmd:"" help:"Show a habit's milestone roadmap."`
	Resources HabitResourcesCmd `cmd:"" help:"Show a habit's suggested resources."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"Short description or goal context." default:""`
	Target      int    `help:"Target days per week (1-7)." default:"5"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	habit := models.Habit{
		ID:                uuid.New().String(),
		Name:              c.Name,
		TargetDaysPerWeek: c.Target,
		CreatedAt:         time.Now().UTC(),
	}
	if c.Description != "" {
		desc := c.Description
		habit.Description = &desc
	}

	if err := validation.ValidateHabit(habit); err != nil {
		return err
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	items, resources := generator.Generate(habit.ID, habit.Name, habit.Description)
	for _, item := range items {
		if err := ctx.Store.AddRoadmapItem(item); err != nil {
			return err
		}
	}
	for _, res := range resources {
		if err := ctx.Store.AddResource(res); err != nil {
			return err
		}
	}

	fmt.Printf("Added habit %s (%s) with %d milestones and %d resources\n",
		habit.Name, habit.ID, len(items), len(resources))
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		fmt.Printf("%s  %s (target %d days/week)\n", habit.ID, habit.Name, habit.TargetDaysPerWeek)
	}

	return nil
}

type HabitRoadmapCmd struct {
	HabitID string `arg:"" help:"Habit id."`
}

func (c *HabitRoadmapCmd) Run(ctx *Context) error {
	items, err := ctx.Store.GetRoadmapForHabit(c.HabitID)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("No roadmap found for this habit.")
		return nil
	}

	for _, item := range items {
		mark := " "
		if item.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %d. %s", mark, item.Order, item.Title)
		if item.Description != nil {
			fmt.Printf(" - %s", *item.Description)
		}
		if item.DueDate != nil {
			fmt.Printf(" (due %s)", item.DueDate.Format(constants.DateFormat))
		}
		fmt.Println()
	}

	return nil
}

type HabitResourcesCmd struct {
	HabitID string `arg:"" help:"Habit id."`
}

func (c *HabitResourcesCmd) Run(ctx *Context) error {
	resources, err := ctx.Store.GetResourcesForHabit(c.HabitID)
	if err != nil {
		return err
	}

	if len(resources) == 0 {
		fmt.Println("No resources found for this habit.")
		return nil
	}

	for _, res := range resources {
		fmt.Printf("%s (%s) %s", res.Title, res.Type, res.URL)
		if res.Provider != nil {
			fmt.Printf(" - %s", *res.Provider)
		}
		fmt.Println()
	}

	return nil
}

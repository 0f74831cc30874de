package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/habitgenius/habitgenius/internal/constants"
	"github.com/habitgenius/habitgenius/internal/models"
)

func (s *Store) AddHabit(habit models.Habit) error {
	_, err := s.db.Exec(`
		INSERT INTO habit (id, name, description, start_date, target_days_per_week, progress, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		habit.ID, habit.Name, nullString(habit.Description),
		nullTime(habit.StartDate, constants.DateFormat),
		habit.TargetDaysPerWeek, habit.Progress,
		habit.CreatedAt.Format(time.RFC3339))

	return err
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, description, start_date, target_days_per_week, progress, created_at
		FROM habit WHERE id = ?`, id)

	return scanHabit(row)
}

func (s *Store) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, start_date, target_days_per_week, progress, created_at
		FROM habit ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var description, startDate sql.NullString
	var createdAt string

	err := row.Scan(&h.ID, &h.Name, &description, &startDate, &h.TargetDaysPerWeek, &h.Progress, &createdAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.Description = stringPtr(description)
	h.StartDate, err = timePtr(startDate, constants.DateFormat, "start_date")
	if err != nil {
		return models.Habit{}, err
	}
	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return h, nil
}

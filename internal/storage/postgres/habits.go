package postgres

import (
	"database/sql"

	"github.com/habitgenius/habitgenius/internal/models"
)

func (s *Store) AddHabit(habit models.Habit) error {
	_, err := s.db.Exec(`
		INSERT INTO habit (id, name, description, start_date, target_days_per_week, progress, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		habit.ID, habit.Name, nullString(habit.Description), nullTimeVal(habit.StartDate),
		habit.TargetDaysPerWeek, habit.Progress, habit.CreatedAt)

	return err
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, description, start_date, target_days_per_week, progress, created_at
		FROM habit WHERE id = $1`, id)

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
	var description sql.NullString
	var startDate sql.NullTime

	err := row.Scan(&h.ID, &h.Name, &description, &startDate, &h.TargetDaysPerWeek, &h.Progress, &h.CreatedAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.Description = stringPtr(description)
	h.StartDate = timePtrVal(startDate)

	return h, nil
}

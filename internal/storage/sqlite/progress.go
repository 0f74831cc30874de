package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/habitgenius/habitgenius/internal/models"
)

func (s *Store) AddProgress(p models.Progress) error {
	_, err := s.db.Exec(`
		INSERT INTO progress (id, habit_id, note, image_base64, taken_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.HabitID, nullString(p.Note), nullString(p.ImageBase64),
		p.TakenAt.Format(time.RFC3339), p.CreatedAt.Format(time.RFC3339))

	return err
}

func (s *Store) GetProgressForHabit(habitID string) ([]models.Progress, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, note, image_base64, taken_at, created_at
		FROM progress WHERE habit_id = ? ORDER BY taken_at, id`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Progress
	for rows.Next() {
		var p models.Progress
		var note, image sql.NullString
		var takenAt, createdAt string

		err := rows.Scan(&p.ID, &p.HabitID, &note, &image, &takenAt, &createdAt)
		if err != nil {
			return nil, err
		}

		p.Note = stringPtr(note)
		p.ImageBase64 = stringPtr(image)
		p.TakenAt, err = time.Parse(time.RFC3339, takenAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse taken_at for progress %s: %w", p.ID, err)
		}
		p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for progress %s: %w", p.ID, err)
		}

		records = append(records, p)
	}

	return records, rows.Err()
}

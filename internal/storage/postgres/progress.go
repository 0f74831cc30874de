package postgres

import (
	"database/sql"

	"github.com/habitgenius/habitgenius/internal/models"
)

func (s *Store) AddProgress(p models.Progress) error {
	_, err := s.db.Exec(`
		INSERT INTO progress (id, habit_id, note, image_base64, taken_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.HabitID, nullString(p.Note), nullString(p.ImageBase64), p.TakenAt, p.CreatedAt)

	return err
}

func (s *Store) GetProgressForHabit(habitID string) ([]models.Progress, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, note, image_base64, taken_at, created_at
		FROM progress WHERE habit_id = $1 ORDER BY taken_at, id`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Progress
	for rows.Next() {
		var p models.Progress
		var note, image sql.NullString

		err := rows.Scan(&p.ID, &p.HabitID, &note, &image, &p.TakenAt, &p.CreatedAt)
		if err != nil {
			return nil, err
		}

		p.Note = stringPtr(note)
		p.ImageBase64 = stringPtr(image)

		records = append(records, p)
	}

	return records, rows.Err()
}

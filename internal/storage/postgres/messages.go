package postgres

import (
	"database/sql"

	"github.com/habitgenius/habitgenius/internal/models"
)

func (s *Store) AddMessage(msg models.Message) error {
	_, err := s.db.Exec(`
		INSERT INTO message (id, habit_id, role, content, image_base64, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		msg.ID, nullString(msg.HabitID), string(msg.Role), msg.Content,
		nullString(msg.ImageBase64), msg.CreatedAt)

	return err
}

func (s *Store) GetMessagesForHabit(habitID string) ([]models.Message, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, role, content, image_base64, created_at
		FROM message WHERE habit_id = $1 ORDER BY seq`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		var habit, image sql.NullString
		var role string

		err := rows.Scan(&m.ID, &habit, &role, &m.Content, &image, &m.CreatedAt)
		if err != nil {
			return nil, err
		}

		m.HabitID = stringPtr(habit)
		m.Role = models.Role(role)
		m.ImageBase64 = stringPtr(image)

		messages = append(messages, m)
	}

	return messages, rows.Err()
}

package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/habitgenius/habitgenius/internal/models"
)

func (s *Store) AddMessage(msg models.Message) error {
	// seq preserves the append order of the conversation log
	_, err := s.db.Exec(`
		INSERT INTO message (id, habit_id, role, content, image_base64, created_at, seq)
		VALUES (?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM message))`,
		msg.ID, nullString(msg.HabitID), string(msg.Role), msg.Content,
		nullString(msg.ImageBase64), msg.CreatedAt.Format(time.RFC3339))

	return err
}

func (s *Store) GetMessagesForHabit(habitID string) ([]models.Message, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, role, content, image_base64, created_at
		FROM message WHERE habit_id = ? ORDER BY seq`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		var habit, image sql.NullString
		var role, createdAt string

		err := rows.Scan(&m.ID, &habit, &role, &m.Content, &image, &createdAt)
		if err != nil {
			return nil, err
		}

		m.HabitID = stringPtr(habit)
		m.Role = models.Role(role)
		m.ImageBase64 = stringPtr(image)
		m.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for message %s: %w", m.ID, err)
		}

		messages = append(messages, m)
	}

	return messages, rows.Err()
}

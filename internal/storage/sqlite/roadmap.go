package sqlite

import (
	"database/sql"

	"github.com/habitgenius/habitgenius/internal/constants"
	"github.com/habitgenius/habitgenius/internal/models"
)

func (s *Store) AddRoadmapItem(item models.RoadmapItem) error {
	_, err := s.db.Exec(`
		INSERT INTO roadmapitem (id, habit_id, title, description, sort_order, due_date, completed)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.HabitID, item.Title, nullString(item.Description),
		item.Order, nullTime(item.DueDate, constants.DateFormat), item.Completed)

	return err
}

func (s *Store) GetRoadmapForHabit(habitID string) ([]models.RoadmapItem, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, title, description, sort_order, due_date, completed
		FROM roadmapitem WHERE habit_id = ? ORDER BY sort_order`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.RoadmapItem
	for rows.Next() {
		var item models.RoadmapItem
		var description, dueDate sql.NullString

		err := rows.Scan(&item.ID, &item.HabitID, &item.Title, &description, &item.Order, &dueDate, &item.Completed)
		if err != nil {
			return nil, err
		}

		item.Description = stringPtr(description)
		item.DueDate, err = timePtr(dueDate, constants.DateFormat, "due_date")
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (s *Store) AddResource(res models.Resource) error {
	// seq preserves the generation order of the resource list
	_, err := s.db.Exec(`
		INSERT INTO resource (id, habit_id, title, url, type, provider, notes, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM resource))`,
		res.ID, res.HabitID, res.Title, res.URL, string(res.Type),
		nullString(res.Provider), nullString(res.Notes))

	return err
}

func (s *Store) GetResourcesForHabit(habitID string) ([]models.Resource, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, title, url, type, provider, notes
		FROM resource WHERE habit_id = ? ORDER BY seq`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		var res models.Resource
		var resType string
		var provider, notes sql.NullString

		err := rows.Scan(&res.ID, &res.HabitID, &res.Title, &res.URL, &resType, &provider, &notes)
		if err != nil {
			return nil, err
		}

		res.Type = models.ResourceType(resType)
		res.Provider = stringPtr(provider)
		res.Notes = stringPtr(notes)

		resources = append(resources, res)
	}

	return resources, rows.Err()
}

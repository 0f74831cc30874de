package storage

import "github.com/habitgenius/habitgenius/internal/models"

// Provider is the document store every component persists through.
// Each call is attempted exactly once; failures surface as
// *PersistenceError and are never retried here.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)

	// Roadmap items
	AddRoadmapItem(models.RoadmapItem) error
	// GetRoadmapForHabit returns the habit's milestones sorted by order
	// ascending.
	GetRoadmapForHabit(habitID string) ([]models.RoadmapItem, error)

	// Resources
	AddResource(models.Resource) error
	GetResourcesForHabit(habitID string) ([]models.Resource, error)

	// Progress records
	AddProgress(models.Progress) error
	GetProgressForHabit(habitID string) ([]models.Progress, error)

	// Messages
	AddMessage(models.Message) error
	// GetMessagesForHabit returns messages in append order.
	GetMessagesForHabit(habitID string) ([]models.Message, error)

	// Diagnostics
	Ping() error
	Collections() ([]string, error)

	// Utils
	GetConfigPath() string
}

package storage

import (
	"github.com/habitgenius/habitgenius/internal/constants"
	"github.com/habitgenius/habitgenius/internal/models"
	"github.com/habitgenius/habitgenius/internal/storage/sqlite"
)

// SQLiteStore adapts sqlite.Store to the Provider interface and maps
// backend errors onto PersistenceError.
type SQLiteStore struct {
	store *sqlite.Store
}

// NewSQLiteStore creates a new SQLite-backed store
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		store: sqlite.NewStore(path),
	}
}

// Lifecycle methods
func (s *SQLiteStore) Init() error  { return wrap("init", "store", s.store.Init()) }
func (s *SQLiteStore) Load() error  { return wrap("load", "store", s.store.Load()) }
func (s *SQLiteStore) Close() error { return s.store.Close() }

func (s *SQLiteStore) GetConfigPath() string { return s.store.GetConfigPath() }
func (s *SQLiteStore) Ping() error           { return wrap("ping", "store", s.store.Ping()) }

func (s *SQLiteStore) Collections() ([]string, error) {
	names, err := s.store.Collections()
	return names, wrap("query", "store", err)
}

// Habit methods
func (s *SQLiteStore) AddHabit(habit models.Habit) error {
	return wrap("insert", constants.CollectionHabit, s.store.AddHabit(habit))
}

func (s *SQLiteStore) GetHabit(id string) (models.Habit, error) {
	h, err := s.store.GetHabit(id)
	return h, wrap("get", constants.CollectionHabit, err)
}

func (s *SQLiteStore) GetAllHabits() ([]models.Habit, error) {
	habits, err := s.store.GetAllHabits()
	return habits, wrap("query", constants.CollectionHabit, err)
}

// Roadmap methods
func (s *SQLiteStore) AddRoadmapItem(item models.RoadmapItem) error {
	return wrap("insert", constants.CollectionRoadmapItem, s.store.AddRoadmapItem(item))
}

func (s *SQLiteStore) GetRoadmapForHabit(habitID string) ([]models.RoadmapItem, error) {
	items, err := s.store.GetRoadmapForHabit(habitID)
	return items, wrap("query", constants.CollectionRoadmapItem, err)
}

// Resource methods
func (s *SQLiteStore) AddResource(res models.Resource) error {
	return wrap("insert", constants.CollectionResource, s.store.AddResource(res))
}

func (s *SQLiteStore) GetResourcesForHabit(habitID string) ([]models.Resource, error) {
	resources, err := s.store.GetResourcesForHabit(habitID)
	return resources, wrap("query", constants.CollectionResource, err)
}

// Progress methods
func (s *SQLiteStore) AddProgress(p models.Progress) error {
	return wrap("insert", constants.CollectionProgress, s.store.AddProgress(p))
}

func (s *SQLiteStore) GetProgressForHabit(habitID string) ([]models.Progress, error) {
	records, err := s.store.GetProgressForHabit(habitID)
	return records, wrap("query", constants.CollectionProgress, err)
}

// Message methods
func (s *SQLiteStore) AddMessage(msg models.Message) error {
	return wrap("insert", constants.CollectionMessage, s.store.AddMessage(msg))
}

func (s *SQLiteStore) GetMessagesForHabit(habitID string) ([]models.Message, error) {
	messages, err := s.store.GetMessagesForHabit(habitID)
	return messages, wrap("query", constants.CollectionMessage, err)
}

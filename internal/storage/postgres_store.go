package storage

import (
	"github.com/habitgenius/habitgenius/internal/constants"
	"github.com/habitgenius/habitgenius/internal/models"
	"github.com/habitgenius/habitgenius/internal/storage/postgres"
)

// PostgresStore adapts postgres.Store to the Provider interface and
// maps backend errors onto PersistenceError.
type PostgresStore struct {
	store *postgres.Store
}

// NewPostgresStore creates a new PostgreSQL-backed store
func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		store: postgres.New(connStr),
	}
}

// Lifecycle methods
func (s *PostgresStore) Init() error  { return wrap("init", "store", s.store.Init()) }
func (s *PostgresStore) Load() error  { return wrap("load", "store", s.store.Load()) }
func (s *PostgresStore) Close() error { return s.store.Close() }

func (s *PostgresStore) GetConfigPath() string { return s.store.GetConfigPath() }
func (s *PostgresStore) Ping() error           { return wrap("ping", "store", s.store.Ping()) }

func (s *PostgresStore) Collections() ([]string, error) {
	names, err := s.store.Collections()
	return names, wrap("query", "store", err)
}

// Habit methods
func (s *PostgresStore) AddHabit(habit models.Habit) error {
	return wrap("insert", constants.CollectionHabit, s.store.AddHabit(habit))
}

func (s *PostgresStore) GetHabit(id string) (models.Habit, error) {
	h, err := s.store.GetHabit(id)
	return h, wrap("get", constants.CollectionHabit, err)
}

func (s *PostgresStore) GetAllHabits() ([]models.Habit, error) {
	habits, err := s.store.GetAllHabits()
	return habits, wrap("query", constants.CollectionHabit, err)
}

// Roadmap methods
func (s *PostgresStore) AddRoadmapItem(item models.RoadmapItem) error {
	return wrap("insert", constants.CollectionRoadmapItem, s.store.AddRoadmapItem(item))
}

func (s *PostgresStore) GetRoadmapForHabit(habitID string) ([]models.RoadmapItem, error) {
	items, err := s.store.GetRoadmapForHabit(habitID)
	return items, wrap("query", constants.CollectionRoadmapItem, err)
}

// Resource methods
func (s *PostgresStore) AddResource(res models.Resource) error {
	return wrap("insert", constants.CollectionResource, s.store.AddResource(res))
}

func (s *PostgresStore) GetResourcesForHabit(habitID string) ([]models.Resource, error) {
	resources, err := s.store.GetResourcesForHabit(habitID)
	return resources, wrap("query", constants.CollectionResource, err)
}

// Progress methods
func (s *PostgresStore) AddProgress(p models.Progress) error {
	return wrap("insert", constants.CollectionProgress, s.store.AddProgress(p))
}

func (s *PostgresStore) GetProgressForHabit(habitID string) ([]models.Progress, error) {
	records, err := s.store.GetProgressForHabit(habitID)
	return records, wrap("query", constants.CollectionProgress, err)
}

// Message methods
func (s *PostgresStore) AddMessage(msg models.Message) error {
	return wrap("insert", constants.CollectionMessage, s.store.AddMessage(msg))
}

func (s *PostgresStore) GetMessagesForHabit(habitID string) ([]models.Message, error) {
	messages, err := s.store.GetMessagesForHabit(habitID)
	return messages, wrap("query", constants.CollectionMessage, err)
}

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/habitgenius/habitgenius/internal/constants"
	"github.com/habitgenius/habitgenius/internal/models"
)

// document is the on-disk shape of the JSON store. Habits are keyed by
// id; everything else keeps insertion order because roadmap/resource
// batches and the message log are ordered sequences.
type document struct {
	Version      int                     `json:"version"`
	Habits       map[string]models.Habit `json:"habits"`
	RoadmapItems []models.RoadmapItem    `json:"roadmap_items"`
	Resources    []models.Resource       `json:"resources"`
	Progress     []models.Progress       `json:"progress"`
	Messages     []models.Message        `json:"messages"`
}

// JSONStore is a single-file storage backend. It is the zero-setup
// fallback and the backend the test suite runs against.
type JSONStore struct {
	mu   sync.Mutex
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return wrap("init", "store", fmt.Errorf("failed to create config directory: %w", err))
	}

	if _, err := os.Stat(s.path); err == nil {
		return wrap("init", "store", fmt.Errorf("storage already initialized at %s", s.path))
	}

	s.doc = &document{
		Version: 1,
		Habits:  make(map[string]models.Habit),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return wrap("load", "store", fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName))
		}
		return wrap("load", "store", fmt.Errorf("failed to read storage: %w", err))
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return wrap("load", "store", fmt.Errorf("failed to parse storage: %w", err))
	}

	if s.doc.Habits == nil {
		s.doc.Habits = make(map[string]models.Habit)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func (s *JSONStore) Ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return wrap("ping", "store", errors.New("storage not loaded"))
	}
	return nil
}

func (s *JSONStore) Collections() ([]string, error) {
	if err := s.Ping(); err != nil {
		return nil, err
	}
	return append([]string(nil), constants.Collections...), nil
}

// save writes the document back to disk. Callers must hold the mutex.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) notLoaded() error {
	if s.doc == nil {
		return errors.New("storage not loaded")
	}
	return nil
}

// Habits

func (s *JSONStore) AddHabit(habit models.Habit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.notLoaded(); err != nil {
		return wrap("insert", constants.CollectionHabit, err)
	}

	s.doc.Habits[habit.ID] = habit
	return wrap("insert", constants.CollectionHabit, s.save())
}

func (s *JSONStore) GetHabit(id string) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.notLoaded(); err != nil {
		return models.Habit{}, wrap("get", constants.CollectionHabit, err)
	}

	habit, ok := s.doc.Habits[id]
	if !ok {
		return models.Habit{}, wrap("get", constants.CollectionHabit, ErrNotFound)
	}
	return habit, nil
}

func (s *JSONStore) GetAllHabits() ([]models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.notLoaded(); err != nil {
		return nil, wrap("query", constants.CollectionHabit, err)
	}

	habits := make([]models.Habit, 0, len(s.doc.Habits))
	for _, h := range s.doc.Habits {
		habits = append(habits, h)
	}
	sort.Slice(habits, func(i, j int) bool {
		if habits[i].CreatedAt.Equal(habits[j].CreatedAt) {
			return habits[i].ID < habits[j].ID
		}
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})
	return habits, nil
}

// Roadmap items

func (s *JSONStore) AddRoadmapItem(item models.RoadmapItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.notLoaded(); err != nil {
		return wrap("insert", constants.CollectionRoadmapItem, err)
	}

	s.doc.RoadmapItems = append(s.doc.RoadmapItems, item)
	return wrap("insert", constants.CollectionRoadmapItem, s.save())
}

func (s *JSONStore) GetRoadmapForHabit(habitID string) ([]models.RoadmapItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.notLoaded(); err != nil {
		return nil, wrap("query", constants.CollectionRoadmapItem, err)
	}

	var items []models.RoadmapItem
	for _, item := range s.doc.RoadmapItems {
		if item.HabitID == habitID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	return items, nil
}

// Resources

func (s *JSONStore) AddResource(res models.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.notLoaded(); err != nil {
		return wrap("insert", constants.CollectionResource, err)
	}

	s.doc.Resources = append(s.doc.Resources, res)
	return wrap("insert", constants.CollectionResource, s.save())
}

func (s *JSONStore) GetResourcesForHabit(habitID string) ([]models.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.notLoaded(); err != nil {
		return nil, wrap("query", constants.CollectionResource, err)
	}

	var resources []models.Resource
	for _, res := range s.doc.Resources {
		if res.HabitID == habitID {
			resources = append(resources, res)
		}
	}
	return resources, nil
}

// Progress records

func (s *JSONStore) AddProgress(p models.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.notLoaded(); err != nil {
		return wrap("insert", constants.CollectionProgress, err)
	}

	s.doc.Progress = append(s.doc.Progress, p)
	return wrap("insert", constants.CollectionProgress, s.save())
}

func (s *JSONStore) GetProgressForHabit(habitID string) ([]models.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.notLoaded(); err != nil {
		return nil, wrap("query", constants.CollectionProgress, err)
	}

	var records []models.Progress
	for _, p := range s.doc.Progress {
		if p.HabitID == habitID {
			records = append(records, p)
		}
	}
	return records, nil
}

// Messages

func (s *JSONStore) AddMessage(msg models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.notLoaded(); err != nil {
		return wrap("insert", constants.CollectionMessage, err)
	}

	s.doc.Messages = append(s.doc.Messages, msg)
	return wrap("insert", constants.CollectionMessage, s.save())
}

func (s *JSONStore) GetMessagesForHabit(habitID string) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.notLoaded(); err != nil {
		return nil, wrap("query", constants.CollectionMessage, err)
	}

	var messages []models.Message
	for _, m := range s.doc.Messages {
		if m.HabitID != nil && *m.HabitID == habitID {
			messages = append(messages, m)
		}
	}
	return messages, nil
}

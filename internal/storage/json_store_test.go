package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/habitgenius/habitgenius/internal/constants"
	"github.com/habitgenius/habitgenius/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "habitgenius.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return store
}

func strPtr(s string) *string { return &s }

func TestJSONStoreInit(t *testing.T) {
	t.Run("creates storage file", func(t *testing.T) {
		store := newTestJSONStore(t)
		if err := store.Ping(); err != nil {
			t.Errorf("Ping() after init = %v", err)
		}
	})

	t.Run("fails when already initialized", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "habitgenius.json")
		store := NewJSONStore(path)
		if err := store.Init(); err != nil {
			t.Fatalf("first Init() error = %v", err)
		}
		if err := store.Init(); err == nil {
			t.Error("second Init() should fail")
		}
	})

	t.Run("creates missing directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "habitgenius.json")
		store := NewJSONStore(path)
		if err := store.Init(); err != nil {
			t.Errorf("Init() with nested path = %v", err)
		}
	})
}

func TestJSONStoreLoad(t *testing.T) {
	t.Run("fails when not initialized", func(t *testing.T) {
		store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
		if err := store.Load(); err == nil {
			t.Error("Load() on missing file should fail")
		}
	})

	t.Run("operations fail before load", func(t *testing.T) {
		store := NewJSONStore(filepath.Join(t.TempDir(), "habitgenius.json"))
		if _, err := store.GetAllHabits(); err == nil {
			t.Error("GetAllHabits() before Load() should fail")
		}
	})
}

func TestJSONStoreHabits(t *testing.T) {
	store := newTestJSONStore(t)

	habit := models.Habit{
		ID:                "habit-1",
		Name:              "Read every day",
		Description:       strPtr("30 minutes before bed"),
		TargetDaysPerWeek: 5,
		CreatedAt:         time.Now().UTC(),
	}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}

	t.Run("get by id", func(t *testing.T) {
		got, err := store.GetHabit("habit-1")
		if err != nil {
			t.Fatalf("GetHabit() error = %v", err)
		}
		if got.Name != habit.Name || got.TargetDaysPerWeek != 5 {
			t.Errorf("GetHabit() = %+v, want %+v", got, habit)
		}
		if got.Description == nil || *got.Description != "30 minutes before bed" {
			t.Errorf("GetHabit() description = %v, want %q", got.Description, "30 minutes before bed")
		}
	})

	t.Run("missing habit is ErrNotFound", func(t *testing.T) {
		_, err := store.GetHabit("nope")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("GetHabit() error = %v, want ErrNotFound", err)
		}

		var perr *PersistenceError
		if !errors.As(err, &perr) {
			t.Fatalf("GetHabit() error = %T, want *PersistenceError", err)
		}
		if perr.Collection != constants.CollectionHabit {
			t.Errorf("PersistenceError collection = %q, want %q", perr.Collection, constants.CollectionHabit)
		}
	})

	t.Run("list sorted by creation time", func(t *testing.T) {
		older := models.Habit{
			ID:                "habit-0",
			Name:              "Stretch",
			TargetDaysPerWeek: 3,
			CreatedAt:         habit.CreatedAt.Add(-time.Hour),
		}
		if err := store.AddHabit(older); err != nil {
			t.Fatalf("AddHabit() error = %v", err)
		}

		habits, err := store.GetAllHabits()
		if err != nil {
			t.Fatalf("GetAllHabits() error = %v", err)
		}
		if len(habits) != 2 {
			t.Fatalf("GetAllHabits() returned %d habits, want 2", len(habits))
		}
		if habits[0].ID != "habit-0" || habits[1].ID != "habit-1" {
			t.Errorf("GetAllHabits() order = [%s %s], want [habit-0 habit-1]", habits[0].ID, habits[1].ID)
		}
	})
}

func TestJSONStoreRoadmap(t *testing.T) {
	store := newTestJSONStore(t)

	// Insert out of order to confirm retrieval sorts by order.
	for _, order := range []int{2, 0, 4, 1, 3} {
		item := models.RoadmapItem{
			ID:      "item-" + string(rune('a'+order)),
			HabitID: "habit-1",
			Title:   "Milestone",
			Order:   order,
		}
		if err := store.AddRoadmapItem(item); err != nil {
			t.Fatalf("AddRoadmapItem() error = %v", err)
		}
	}

	items, err := store.GetRoadmapForHabit("habit-1")
	if err != nil {
		t.Fatalf("GetRoadmapForHabit() error = %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("GetRoadmapForHabit() returned %d items, want 5", len(items))
	}
	for i, item := range items {
		if item.Order != i {
			t.Errorf("items[%d].Order = %d, want %d", i, item.Order, i)
		}
	}

	other, err := store.GetRoadmapForHabit("habit-2")
	if err != nil {
		t.Fatalf("GetRoadmapForHabit() error = %v", err)
	}
	if len(other) != 0 {
		t.Errorf("GetRoadmapForHabit() for unknown habit returned %d items, want 0", len(other))
	}
}

func TestJSONStoreResources(t *testing.T) {
	store := newTestJSONStore(t)

	titles := []string{"First", "Second", "Third"}
	for i, title := range titles {
		res := models.Resource{
			ID:      "res-" + string(rune('a'+i)),
			HabitID: "habit-1",
			Title:   title,
			URL:     "https://example.com",
			Type:    models.ResourceArticle,
		}
		if err := store.AddResource(res); err != nil {
			t.Fatalf("AddResource() error = %v", err)
		}
	}

	resources, err := store.GetResourcesForHabit("habit-1")
	if err != nil {
		t.Fatalf("GetResourcesForHabit() error = %v", err)
	}
	if len(resources) != len(titles) {
		t.Fatalf("GetResourcesForHabit() returned %d resources, want %d", len(resources), len(titles))
	}
	for i, res := range resources {
		if res.Title != titles[i] {
			t.Errorf("resources[%d].Title = %q, want %q (insertion order)", i, res.Title, titles[i])
		}
	}
}

func TestJSONStoreProgress(t *testing.T) {
	store := newTestJSONStore(t)

	taken := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	record := models.Progress{
		ID:        "prog-1",
		HabitID:   "habit-1",
		Note:      strPtr("morning session"),
		TakenAt:   taken,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.AddProgress(record); err != nil {
		t.Fatalf("AddProgress() error = %v", err)
	}

	records, err := store.GetProgressForHabit("habit-1")
	if err != nil {
		t.Fatalf("GetProgressForHabit() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("GetProgressForHabit() returned %d records, want 1", len(records))
	}
	if !records[0].TakenAt.Equal(taken) {
		t.Errorf("TakenAt = %v, want %v", records[0].TakenAt, taken)
	}
	if records[0].Note == nil || *records[0].Note != "morning session" {
		t.Errorf("Note = %v, want %q", records[0].Note, "morning session")
	}
}

func TestJSONStoreMessages(t *testing.T) {
	store := newTestJSONStore(t)

	habitID := "habit-1"
	contents := []string{"how do I start", "Here are tailored suggestions"}
	roles := []models.Role{models.RoleUser, models.RoleAssistant}
	for i := range contents {
		msg := models.Message{
			ID:        "msg-" + string(rune('a'+i)),
			HabitID:   &habitID,
			Role:      roles[i],
			Content:   contents[i],
			CreatedAt: time.Now().UTC(),
		}
		if err := store.AddMessage(msg); err != nil {
			t.Fatalf("AddMessage() error = %v", err)
		}
	}

	// A message without a habit reference must not leak into the log.
	stray := models.Message{ID: "msg-z", Role: models.RoleUser, Content: "untracked"}
	if err := store.AddMessage(stray); err != nil {
		t.Fatalf("AddMessage() error = %v", err)
	}

	messages, err := store.GetMessagesForHabit(habitID)
	if err != nil {
		t.Fatalf("GetMessagesForHabit() error = %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("GetMessagesForHabit() returned %d messages, want 2", len(messages))
	}
	for i, msg := range messages {
		if msg.Role != roles[i] || msg.Content != contents[i] {
			t.Errorf("messages[%d] = {%s %q}, want {%s %q}", i, msg.Role, msg.Content, roles[i], contents[i])
		}
	}
}

func TestJSONStorePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitgenius.json")

	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	habit := models.Habit{ID: "habit-1", Name: "Run", TargetDaysPerWeek: 4, CreatedAt: time.Now().UTC()}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}
	if err := store.AddRoadmapItem(models.RoadmapItem{ID: "item-1", HabitID: "habit-1", Title: "Start", Order: 0}); err != nil {
		t.Fatalf("AddRoadmapItem() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reloaded := NewJSONStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() after reopen error = %v", err)
	}

	got, err := reloaded.GetHabit("habit-1")
	if err != nil {
		t.Fatalf("GetHabit() after reopen error = %v", err)
	}
	if got.Name != "Run" {
		t.Errorf("GetHabit() name = %q, want %q", got.Name, "Run")
	}

	items, err := reloaded.GetRoadmapForHabit("habit-1")
	if err != nil {
		t.Fatalf("GetRoadmapForHabit() after reopen error = %v", err)
	}
	if len(items) != 1 {
		t.Errorf("GetRoadmapForHabit() after reopen returned %d items, want 1", len(items))
	}
}

func TestJSONStoreCollections(t *testing.T) {
	store := newTestJSONStore(t)

	collections, err := store.Collections()
	if err != nil {
		t.Fatalf("Collections() error = %v", err)
	}
	if len(collections) != len(constants.Collections) {
		t.Fatalf("Collections() returned %d names, want %d", len(collections), len(constants.Collections))
	}
	for i, name := range constants.Collections {
		if collections[i] != name {
			t.Errorf("collections[%d] = %q, want %q", i, collections[i], name)
		}
	}
}

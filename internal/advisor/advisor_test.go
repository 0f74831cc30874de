package advisor

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/habitgenius/habitgenius/internal/models"
	"github.com/habitgenius/habitgenius/internal/storage"
)

const (
	designTip1  = "Focus on spacing, alignment, and contrast. Try a 4/8pt grid."
	workoutTip1 = "Start with 3 full-body sessions/week. Track sets x reps."
	workoutTip2 = "Progressive overload: add small increments weekly."
	readingTip1 = "Set a 20–30 min window daily. Use a timer and go distraction-free."
)

func TestReply(t *testing.T) {
	tests := []struct {
		name        string
		question    string
		hasImage    bool
		wantParts   []string
		rejectParts []string
	}{
		{
			name:        "workout question gets both workout tips only",
			question:    "I want to work out more",
			wantParts:   []string{workoutTip1, workoutTip2},
			rejectParts: []string{designTip1, readingTip1, "I looked at your image"},
		},
		{
			name:      "gym keyword matches the workout group",
			question:  "how often should I go to the gym?",
			wantParts: []string{workoutTip1},
		},
		{
			name:      "book keyword matches the reading group",
			question:  "which book should I start with",
			wantParts: []string{readingTip1},
		},
		{
			name:        "no keyword falls back to the generic tip",
			question:    "how do I stay motivated?",
			wantParts:   []string{"Clarify your goal and current level. What's one tiny step today?"},
			rejectParts: []string{designTip1, workoutTip1, readingTip1},
		},
		{
			name:      "matching is case-insensitive",
			question:  "DESIGN feedback please",
			wantParts: []string{designTip1},
		},
		{
			name:      "multiple groups accumulate in design, workout, reading order",
			question:  "design a workout and reading routine",
			wantParts: []string{designTip1, workoutTip1, readingTip1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reply(tt.question, tt.hasImage)

			for _, part := range tt.wantParts {
				if !strings.Contains(got, part) {
					t.Errorf("Reply() missing %q in %q", part, got)
				}
			}
			for _, part := range tt.rejectParts {
				if strings.Contains(got, part) {
					t.Errorf("Reply() unexpectedly contains %q", part)
				}
			}

			if !strings.Contains(got, "Here are tailored suggestions: ") {
				t.Errorf("Reply() missing lead-in: %q", got)
			}
		})
	}
}

func TestReplyOrdersAccumulatedTips(t *testing.T) {
	got := Reply("design a workout and reading routine", false)

	design := strings.Index(got, designTip1)
	workout := strings.Index(got, workoutTip1)
	reading := strings.Index(got, readingTip1)
	if design < 0 || workout < 0 || reading < 0 {
		t.Fatalf("Reply() missing expected tips: %q", got)
	}
	if !(design < workout && workout < reading) {
		t.Errorf("tips out of order in %q", got)
	}
}

func TestReplyWithImageOnly(t *testing.T) {
	got := Reply("", true)

	want := "I looked at your image. Consider composition, clarity, and consistency with your stated goal. " +
		"Here are tailored suggestions: Clarify your goal and current level. What's one tiny step today?"
	if got != want {
		t.Errorf("Reply(\"\", true) = %q, want %q", got, want)
	}
}

func setupTestStore(t *testing.T) storage.Provider {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "test.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load test store: %v", err)
	}
	return store
}

func TestAskPersistsExchange(t *testing.T) {
	store := setupTestStore(t)
	habitID := "habit-1"
	question := "how do I read more?"

	answer, err := New(store).Ask(&habitID, &question, nil)
	if err != nil {
		t.Fatalf("Ask() returned unexpected error: %v", err)
	}
	if answer == "" {
		t.Fatal("Ask() returned empty answer")
	}

	messages, err := store.GetMessagesForHabit(habitID)
	if err != nil {
		t.Fatalf("failed to read back messages: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("Ask() persisted %d messages, want 2", len(messages))
	}

	if messages[0].Role != models.RoleUser {
		t.Errorf("first message role = %q, want user", messages[0].Role)
	}
	if messages[0].Content != question {
		t.Errorf("user message content = %q, want %q", messages[0].Content, question)
	}
	if messages[1].Role != models.RoleAssistant {
		t.Errorf("second message role = %q, want assistant", messages[1].Role)
	}
	if messages[1].Content != answer {
		t.Errorf("assistant message content = %q, want the returned answer", messages[1].Content)
	}
}

func TestAskWithNoQuestionLogsEmptyContent(t *testing.T) {
	store := setupTestStore(t)
	habitID := "habit-2"
	image := "aGVsbG8="

	answer, err := New(store).Ask(&habitID, nil, &image)
	if err != nil {
		t.Fatalf("Ask() returned unexpected error: %v", err)
	}
	if !strings.HasPrefix(answer, "I looked at your image.") {
		t.Errorf("Ask() with image should acknowledge it, got %q", answer)
	}

	messages, err := store.GetMessagesForHabit(habitID)
	if err != nil {
		t.Fatalf("failed to read back messages: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("Ask() persisted %d messages, want 2", len(messages))
	}
	if messages[0].Content != "" {
		t.Errorf("user message content = %q, want empty for absent question", messages[0].Content)
	}
	if messages[0].ImageBase64 == nil || *messages[0].ImageBase64 != image {
		t.Error("user message should carry the image payload")
	}
}

// failingStore rejects every message insert.
type failingStore struct {
	storage.Provider
}

var errRejected = errors.New("write rejected")

func (f *failingStore) AddMessage(models.Message) error {
	return errRejected
}

func TestAskPropagatesStoreFailure(t *testing.T) {
	store := &failingStore{Provider: setupTestStore(t)}

	question := "anything"
	_, err := New(store).Ask(nil, &question, nil)
	if !errors.Is(err, errRejected) {
		t.Errorf("Ask() error = %v, want the store failure", err)
	}
}

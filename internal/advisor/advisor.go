// Package advisor answers free-text habit questions with keyword-matched
// tips and records every exchange in the message log.
package advisor

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/habitgenius/habitgenius/internal/models"
	"github.com/habitgenius/habitgenius/internal/storage"
)

const (
	imageAck = "I looked at your image. Consider composition, clarity, and consistency with your stated goal. "
	leadIn   = "Here are tailored suggestions: "

	fallbackTip = "Clarify your goal and current level. What's one tiny step today?"
)

// tipGroup couples a keyword set with the tips it contributes. Groups
// are checked independently and in order: a question can collect tips
// from several groups.
type tipGroup struct {
	keywords []string
	tips     []string
}

var tipGroups = []tipGroup{
	{
		keywords: []string{"design"},
		tips: []string{
			"Focus on spacing, alignment, and contrast. Try a 4/8pt grid.",
			"Collect 3 references and recreate one UI daily for 7 days.",
		},
	},
	{
		keywords: []string{"work out", "workout", "gym"},
		tips: []string{
			"Start with 3 full-body sessions/week. Track sets x reps.",
			"Progressive overload: add small increments weekly.",
		},
	},
	{
		keywords: []string{"read", "book"},
		tips: []string{
			"Set a 20–30 min window daily. Use a timer and go distraction-free.",
			"Write a 3-sentence summary after each session.",
		},
	},
}

// Reply composes the canned answer for a question. It is pure: the
// same question and image flag always produce the same reply.
func Reply(question string, hasImage bool) string {
	q := strings.ToLower(question)

	var tips []string
	for _, group := range tipGroups {
		for _, kw := range group.keywords {
			if strings.Contains(q, kw) {
				tips = append(tips, group.tips...)
				break
			}
		}
	}
	if len(tips) == 0 {
		tips = append(tips, fallbackTip)
	}

	var b strings.Builder
	if hasImage {
		b.WriteString(imageAck)
	}
	b.WriteString(leadIn)
	b.WriteString(strings.Join(tips, " "))
	return b.String()
}

// Advisor answers questions and logs each exchange through the store.
type Advisor struct {
	store storage.Provider
}

func New(store storage.Provider) *Advisor {
	return &Advisor{store: store}
}

// Ask composes a reply and unconditionally persists the exchange as
// two messages, user first, then assistant. A store failure aborts the
// exchange and propagates to the caller.
func (a *Advisor) Ask(habitID *string, question *string, imageBase64 *string) (string, error) {
	q := ""
	if question != nil {
		q = *question
	}
	hasImage := imageBase64 != nil && *imageBase64 != ""

	reply := Reply(q, hasImage)

	now := time.Now().UTC()
	userMsg := models.Message{
		ID:          uuid.New().String(),
		HabitID:     habitID,
		Role:        models.RoleUser,
		Content:     q,
		ImageBase64: imageBase64,
		CreatedAt:   now,
	}
	if err := a.store.AddMessage(userMsg); err != nil {
		return "", err
	}

	assistantMsg := models.Message{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		Role:      models.RoleAssistant,
		Content:   reply,
		CreatedAt: now,
	}
	if err := a.store.AddMessage(assistantMsg); err != nil {
		return "", err
	}

	return reply, nil
}

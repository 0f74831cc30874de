package models

import "time"

// Role identifies which side of the advice exchange authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn in the user/assistant advice exchange. Messages
// form an append-only log, optionally tied to a habit.
type Message struct {
	ID          string    `json:"id"`
	HabitID     *string   `json:"habit_id,omitempty"`
	Role        Role      `json:"role"`
	Content     string    `json:"content"`
	ImageBase64 *string   `json:"image_base64,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

package models

import "time"

// Progress is a single check-in for a habit. Records are append-only;
// they are never mutated or deleted.
type Progress struct {
	ID          string    `json:"id"`
	HabitID     string    `json:"habit_id"`
	Note        *string   `json:"note,omitempty"`
	ImageBase64 *string   `json:"image_base64,omitempty"`
	TakenAt     time.Time `json:"taken_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// EffectiveTime returns the timestamp used for streak computation:
// TakenAt when set, otherwise the record's creation time. The zero
// time means the record carries no usable timestamp at all.
func (p Progress) EffectiveTime() time.Time {
	if !p.TakenAt.IsZero() {
		return p.TakenAt
	}
	return p.CreatedAt
}

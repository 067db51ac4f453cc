package models

import "time"

// Day note position hints for rendering.
const (
	NotePositionTop    = "top"
	NotePositionBottom = "bottom"
)

// DayNote is a free-text annotation on a (calendar, date) pair. At
// most one note exists per pair, enforced by upsert semantics. A note
// may exist for a date with zero shifts.
type DayNote struct {
	ID         string    `json:"id"`
	CalendarID string    `json:"calendar_id"`
	NoteDate   time.Time `json:"-"`
	Content    string    `json:"content"`
	Position   string    `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

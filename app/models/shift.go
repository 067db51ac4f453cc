package models

import "time"

// Shift is a scheduled work interval on a specific date. At most two
// shifts share a (calendar, date) pair; Position is a dense 0-based
// ordinal within that group, assigned in creation order and re-packed
// on deletion. TemplateID is empty for directly created shifts and
// may dangle after the originating template is deleted.
type Shift struct {
	ID         string    `json:"id"`
	CalendarID string    `json:"calendar_id"`
	TemplateID string    `json:"template_id,omitempty"`
	Title      string    `json:"title"`
	ShiftDate  time.Time `json:"-"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Color      string    `json:"color"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

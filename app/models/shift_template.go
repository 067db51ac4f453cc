package models

import "time"

// ShiftTemplate is a reusable (name, start, end, color) pattern.
// Templates are never scheduled themselves; instantiating one onto a
// date produces a Shift. Clock fields hold HH:MM strings.
type ShiftTemplate struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	Name        string    `json:"name"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

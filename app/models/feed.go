package models

import "time"

// FeedEvent is the external-facing projection of a shift merged with
// its date's day note. Start and End are resolved instants with the
// overnight rollover already applied; Date and the clock fields keep
// the wire formats of the events API.
type FeedEvent struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Description *string   `json:"description"`
	Position    int       `json:"position"`
	Color       string    `json:"color,omitempty"`
	Start       time.Time `json:"-"`
	End         time.Time `json:"-"`
}

// UID returns the event identity used by external calendar formats.
func (e FeedEvent) UID() string {
	return e.ID + "@workshift"
}

package services

import (
	"fmt"
	"time"
)

// Webhook actions understood by the receiver. Anything else is a
// handled classification, not an error.
const (
	ActionCreate  = "create"
	ActionDelete  = "delete"
	ActionUnknown = "unknown_action"
)

// ClassifyAction normalizes a webhook action: an absent action means
// create, and anything the receiver does not understand classifies as
// unknown rather than failing.
func ClassifyAction(action string) string {
	switch action {
	case "", ActionCreate:
		return ActionCreate
	case ActionDelete:
		return ActionDelete
	default:
		return ActionUnknown
	}
}

// EventPayload is the body accepted by the external events API and
// the webhook receiver. Clients send either a plain date or an ISO
// start instant; summary is preferred over title for the event text.
type EventPayload struct {
	Action      string `json:"action"`
	EventID     string `json:"event_id"`
	Date        string `json:"date"`
	Start       string `json:"start"`
	Summary     string `json:"summary"`
	Title       string `json:"title"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
}

// ShiftDate resolves the target date from the date field, falling
// back to the date component of the start instant.
func (p *EventPayload) ShiftDate() (time.Time, error) {
	if p.Date != "" {
		return ParseDate(p.Date)
	}
	if p.Start != "" {
		return ParseRangeBound(p.Start)
	}
	return time.Time{}, fmt.Errorf("missing date: expected a date field or a start instant")
}

// ShiftTitle resolves the event text: summary, then title, then a
// generic fallback.
func (p *EventPayload) ShiftTitle() string {
	if p.Summary != "" {
		return p.Summary
	}
	if p.Title != "" {
		return p.Title
	}
	return "Shift"
}

// Clocks returns the start and end times-of-day, defaulting to a
// standard nine-to-five when absent.
func (p *EventPayload) Clocks() (string, string) {
	start, end := p.StartTime, p.EndTime
	if start == "" {
		start = "09:00"
	}
	if end == "" {
		end = "17:00"
	}
	return start, end
}

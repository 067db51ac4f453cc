package services

import (
	"time"

	"workshift/app/models"
)

// ShiftFromTemplate copies a template's name, clock times and color
// onto a new shift draft bound to the given calendar and date. The
// caller is responsible for the capacity check; the draft's position
// is assigned on insert.
func ShiftFromTemplate(t *models.ShiftTemplate, calendarID string, date time.Time) *models.Shift {
	return &models.Shift{
		CalendarID: calendarID,
		TemplateID: t.ID,
		Title:      t.Name,
		ShiftDate:  DateOnly(date),
		StartTime:  t.StartTime,
		EndTime:    t.EndTime,
		Color:      t.Color,
	}
}

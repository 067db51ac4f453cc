package services

import (
	"testing"
	"time"

	"workshift/app/models"

	"github.com/stretchr/testify/assert"
)

func TestShiftFromTemplate(t *testing.T) {
	tmpl := &models.ShiftTemplate{
		ID:        "tmpl-1",
		Name:      "Morning",
		StartTime: "08:00",
		EndTime:   "16:00",
		Color:     "#ff8800",
	}

	shift := ShiftFromTemplate(tmpl, "cal-1", date(2024, time.June, 1))

	assert.Equal(t, "cal-1", shift.CalendarID)
	assert.Equal(t, "tmpl-1", shift.TemplateID)
	assert.Equal(t, "Morning", shift.Title)
	assert.Equal(t, "08:00", shift.StartTime)
	assert.Equal(t, "16:00", shift.EndTime)
	assert.Equal(t, "#ff8800", shift.Color)
	assert.Equal(t, date(2024, time.June, 1), shift.ShiftDate)
	assert.Empty(t, shift.ID, "the store assigns the id on insert")
}

func TestShiftFromTemplateTruncatesDate(t *testing.T) {
	tmpl := &models.ShiftTemplate{Name: "Night", StartTime: "22:00", EndTime: "06:00"}
	instant := time.Date(2024, time.June, 1, 13, 45, 0, 0, time.UTC)

	shift := ShiftFromTemplate(tmpl, "cal-1", instant)
	assert.Equal(t, date(2024, time.June, 1), shift.ShiftDate)
}

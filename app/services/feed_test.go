package services

import (
	"strings"
	"testing"
	"time"

	"workshift/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeFeedMergesDayNote(t *testing.T) {
	shifts := []models.Shift{
		{ID: "s1", Title: "Morning", ShiftDate: date(2024, time.March, 1), StartTime: "08:00", EndTime: "16:00", Position: 0},
	}
	notes := []models.DayNote{
		{CalendarID: "cal-1", NoteDate: date(2024, time.March, 1), Content: "note"},
	}

	events, err := ComposeFeed(shifts, notes)
	require.NoError(t, err)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, "s1", ev.ID)
	assert.Equal(t, "Morning", ev.Summary)
	assert.Equal(t, "2024-03-01", ev.Date)
	require.NotNil(t, ev.Description)
	assert.Equal(t, "note", *ev.Description)
}

func TestComposeFeedWithoutNote(t *testing.T) {
	shifts := []models.Shift{
		{ID: "s1", Title: "Morning", ShiftDate: date(2024, time.March, 1), StartTime: "08:00", EndTime: "16:00"},
	}
	notes := []models.DayNote{
		{NoteDate: date(2024, time.March, 2), Content: "other day"},
	}

	events, err := ComposeFeed(shifts, notes)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Nil(t, events[0].Description)
}

func TestComposeFeedOrdering(t *testing.T) {
	shifts := []models.Shift{
		{ID: "late", ShiftDate: date(2024, time.March, 2), StartTime: "09:00", EndTime: "17:00", Position: 1},
		{ID: "early", ShiftDate: date(2024, time.March, 1), StartTime: "09:00", EndTime: "17:00", Position: 0},
		{ID: "mid", ShiftDate: date(2024, time.March, 2), StartTime: "09:00", EndTime: "17:00", Position: 0},
	}

	events, err := ComposeFeed(shifts, nil)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "early", events[0].ID)
	assert.Equal(t, "mid", events[1].ID)
	assert.Equal(t, "late", events[2].ID)
}

func TestComposeFeedOvernightSpan(t *testing.T) {
	shifts := []models.Shift{
		{ID: "night", ShiftDate: date(2024, time.January, 10), StartTime: "22:00", EndTime: "06:00"},
	}

	events, err := ComposeFeed(shifts, nil)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, time.Date(2024, time.January, 10, 22, 0, 0, 0, time.UTC), events[0].Start)
	assert.Equal(t, time.Date(2024, time.January, 11, 6, 0, 0, 0, time.UTC), events[0].End)
}

func TestComposeFeedEmpty(t *testing.T) {
	events, err := ComposeFeed(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestComposeFeedInvalidClock(t *testing.T) {
	shifts := []models.Shift{
		{ID: "bad", ShiftDate: date(2024, time.March, 1), StartTime: "closed", EndTime: "17:00"},
	}
	_, err := ComposeFeed(shifts, nil)
	assert.Error(t, err)
}

func TestCalendarDocument(t *testing.T) {
	cal := &models.Calendar{ID: "cal-1", Name: "My Shifts"}
	shifts := []models.Shift{
		{ID: "s1", Title: "Morning", ShiftDate: date(2024, time.March, 1), StartTime: "08:00", EndTime: "16:00"},
	}
	notes := []models.DayNote{
		{NoteDate: date(2024, time.March, 1), Content: "note"},
	}
	events, err := ComposeFeed(shifts, notes)
	require.NoError(t, err)

	doc := CalendarDocument(cal, events)

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"PRODID:-//WorkShift Calendar//EN",
		"VERSION:2.0",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:My Shifts",
		"UID:s1@workshift",
		"SUMMARY:Morning",
		"DESCRIPTION:note",
		"END:VCALENDAR",
	} {
		assert.Contains(t, doc, want)
	}
}

func TestCalendarDocumentEmptyCalendar(t *testing.T) {
	cal := &models.Calendar{ID: "cal-1", Name: "Empty"}
	doc := CalendarDocument(cal, nil)

	assert.Contains(t, doc, "X-WR-CALNAME:Empty")
	assert.NotContains(t, doc, "BEGIN:VEVENT")
}

func TestCalendarDocumentOmitsAbsentDescription(t *testing.T) {
	cal := &models.Calendar{ID: "cal-1", Name: "My Shifts"}
	events, err := ComposeFeed([]models.Shift{
		{ID: "s1", Title: "Morning", ShiftDate: date(2024, time.March, 1), StartTime: "08:00", EndTime: "16:00"},
	}, nil)
	require.NoError(t, err)

	doc := CalendarDocument(cal, events)
	for _, line := range strings.Split(doc, "\r\n") {
		assert.False(t, strings.HasPrefix(line, "DESCRIPTION"), "unexpected description line %q", line)
	}
}

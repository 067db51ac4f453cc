package database

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Malformed ids must read as not found, never reach the database:
// Postgres would fail the uuid cast and the caller would see a
// server error instead of a 404. The webhook delete path sends an
// empty event_id when the field is absent, so that case matters most.
func TestLookupsRejectMalformedIDs(t *testing.T) {
	// A nil handle proves the queries are never issued.
	var db *sql.DB

	for _, id := range []string{"", "junk", "1234", "ates!"} {
		_, err := GetShiftByCalendar(db, id, "cal-1")
		assert.ErrorIs(t, err, sql.ErrNoRows, "shift by calendar, id %q", id)

		_, err = GetShiftByID(db, id, "user-1")
		assert.ErrorIs(t, err, sql.ErrNoRows, "shift by id, id %q", id)

		_, err = GetCalendarByID(db, id, "user-1")
		assert.ErrorIs(t, err, sql.ErrNoRows, "calendar, id %q", id)

		_, err = GetShiftTemplateByID(db, id, "user-1")
		assert.ErrorIs(t, err, sql.ErrNoRows, "template, id %q", id)

		_, err = GetDayNoteByID(db, id, "user-1")
		assert.ErrorIs(t, err, sql.ErrNoRows, "day note, id %q", id)

		_, err = GetUserByID(db, id)
		assert.ErrorIs(t, err, sql.ErrNoRows, "user, id %q", id)

		assert.ErrorIs(t, DeleteCalendar(db, id, "user-1"), sql.ErrNoRows, "delete calendar, id %q", id)
		assert.ErrorIs(t, DeleteShiftTemplate(db, id, "user-1"), sql.ErrNoRows, "delete template, id %q", id)
	}
}

func TestKnownID(t *testing.T) {
	assert.True(t, knownID("c56a4180-65aa-42ec-a945-5fd21dec0538"))
	assert.False(t, knownID(""))
	assert.False(t, knownID("not-a-uuid"))
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventPayloadShiftDate(t *testing.T) {
	p := &EventPayload{Date: "2024-06-01"}
	d, err := p.ShiftDate()
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.June, 1), d)

	// Falls back to the date component of the start instant.
	p = &EventPayload{Start: "2024-06-01T22:00:00Z"}
	d, err = p.ShiftDate()
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.June, 1), d)

	// An explicit date wins over the start instant.
	p = &EventPayload{Date: "2024-06-02", Start: "2024-06-01T22:00:00Z"}
	d, err = p.ShiftDate()
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.June, 2), d)

	_, err = (&EventPayload{}).ShiftDate()
	assert.Error(t, err)
	_, err = (&EventPayload{Date: "junk"}).ShiftDate()
	assert.Error(t, err)
}

func TestClassifyAction(t *testing.T) {
	// An absent action defaults to create.
	assert.Equal(t, ActionCreate, ClassifyAction(""))
	assert.Equal(t, ActionCreate, ClassifyAction(ActionCreate))
	assert.Equal(t, ActionDelete, ClassifyAction(ActionDelete))

	for _, action := range []string{"update", "CREATE", "remove", "sync"} {
		assert.Equal(t, ActionUnknown, ClassifyAction(action), "action %q", action)
	}
}

func TestEventPayloadShiftTitle(t *testing.T) {
	assert.Equal(t, "Night watch", (&EventPayload{Summary: "Night watch", Title: "ignored"}).ShiftTitle())
	assert.Equal(t, "Backup", (&EventPayload{Title: "Backup"}).ShiftTitle())
	assert.Equal(t, "Shift", (&EventPayload{}).ShiftTitle())
}

func TestEventPayloadClocks(t *testing.T) {
	start, end := (&EventPayload{}).Clocks()
	assert.Equal(t, "09:00", start)
	assert.Equal(t, "17:00", end)

	start, end = (&EventPayload{StartTime: "22:00", EndTime: "06:00"}).Clocks()
	assert.Equal(t, "22:00", start)
	assert.Equal(t, "06:00", end)

	start, end = (&EventPayload{StartTime: "22:00"}).Clocks()
	assert.Equal(t, "22:00", start)
	assert.Equal(t, "17:00", end)
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.January, 10), d)

	_, err = ParseDate("10/01/2024")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	d, err := ParseClock("22:15")
	require.NoError(t, err)
	assert.Equal(t, 22*time.Hour+15*time.Minute, d)

	for _, bad := range []string{"", "9am", "25:00", "09:60"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, "clock %q should not parse", bad)
	}
}

func TestResolveDateTimesNoRollover(t *testing.T) {
	start, end, err := ResolveDateTimes(date(2024, time.January, 10), "09:00", "17:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.January, 10, 17, 0, 0, 0, time.UTC), end)
}

func TestResolveDateTimesOvernight(t *testing.T) {
	start, end, err := ResolveDateTimes(date(2024, time.January, 10), "22:00", "06:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 10, 22, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.January, 11, 6, 0, 0, 0, time.UTC), end)
}

func TestResolveDateTimesEqualClocksRollOver(t *testing.T) {
	// An end equal to the start is treated as the following day.
	start, end, err := ResolveDateTimes(date(2024, time.January, 10), "08:00", "08:00")
	require.NoError(t, err)
	assert.Equal(t, start.AddDate(0, 0, 1), end)
}

func TestResolveDateTimesInvalidClock(t *testing.T) {
	_, _, err := ResolveDateTimes(date(2024, time.January, 10), "late", "06:00")
	assert.Error(t, err)
	_, _, err = ResolveDateTimes(date(2024, time.January, 10), "09:00", "soon")
	assert.Error(t, err)
}

func TestDateOnly(t *testing.T) {
	instant := time.Date(2024, time.March, 1, 15, 30, 45, 12, time.UTC)
	assert.Equal(t, date(2024, time.March, 1), DateOnly(instant))
}

func TestParseRangeBound(t *testing.T) {
	cases := map[string]time.Time{
		"2024-03-01":           date(2024, time.March, 1),
		"2024-03-01T15:30:00Z": date(2024, time.March, 1),
		"2024-03-01T15:30:00":  date(2024, time.March, 1),
		"2024-03-01T15:30":     date(2024, time.March, 1),
	}
	for input, want := range cases {
		got, err := ParseRangeBound(input)
		require.NoError(t, err, "bound %q", input)
		assert.Equal(t, want, got, "bound %q", input)
	}

	_, err := ParseRangeBound("next tuesday")
	assert.Error(t, err)
}

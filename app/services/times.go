package services

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ParseDate parses a YYYY-MM-DD literal into a UTC midnight instant.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}

// ParseClock validates an HH:MM time-of-day literal and returns its
// offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// DateOnly truncates an instant to its date component.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseRangeBound parses a feed range bound, which clients send either
// as a plain date or as an ISO instant (possibly Zulu-suffixed), and
// truncates it to its date component.
func ParseRangeBound(s string) (time.Time, error) {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range []string{DateLayout, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOnly(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid range bound %q", s)
}

// ResolveDateTimes combines a date with start and end times-of-day
// into concrete instants. An end not after the start denotes an
// overnight shift and rolls the end forward exactly one day. Every
// place that computes a shift's effective span goes through here so
// the rollover behaves identically everywhere.
func ResolveDateTimes(date time.Time, startClock, endClock string) (time.Time, time.Time, error) {
	start, err := ParseClock(startClock)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseClock(endClock)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	day := DateOnly(date)
	startAt := day.Add(start)
	endAt := day.Add(end)
	if !endAt.After(startAt) {
		endAt = endAt.AddDate(0, 0, 1)
	}
	return startAt, endAt, nil
}

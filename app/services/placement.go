package services

import (
	"errors"
	"sort"

	"workshift/app/models"
)

// MaxShiftsPerDay caps the number of shifts sharing a (calendar, date)
// pair.
const MaxShiftsPerDay = 2

// ErrDayFull is returned when a day already holds the maximum number
// of shifts.
var ErrDayFull = errors.New("maximum 2 shifts per day")

// PlacePosition returns the position for a new shift in a day group
// already holding existing shifts. Positions are assigned in creation
// order, so the new position is simply the current group size.
func PlacePosition(existing int) (int, error) {
	if existing >= MaxShiftsPerDay {
		return 0, ErrDayFull
	}
	return existing, nil
}

// PositionUpdate records a shift whose position must change to keep
// the day group dense.
type PositionUpdate struct {
	ShiftID  string
	Position int
}

// RenumberShifts re-packs the positions of the shifts remaining in a
// day group after a deletion. Shifts keep their relative order (prior
// position ascending) and are assigned 0..k-1; only shifts whose
// position actually changes are reported. Deleting the first of two
// shifts therefore demotes the second from position 1 to 0.
func RenumberShifts(remaining []models.Shift) []PositionUpdate {
	ordered := make([]models.Shift, len(remaining))
	copy(ordered, remaining)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	var updates []PositionUpdate
	for i, s := range ordered {
		if s.Position != i {
			updates = append(updates, PositionUpdate{ShiftID: s.ID, Position: i})
		}
	}
	return updates
}

package services

import (
	"testing"

	"workshift/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacePosition(t *testing.T) {
	pos, err := PlacePosition(0)
	require.NoError(t, err)
	assert.Equal(t, 0, pos)

	pos, err = PlacePosition(1)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	_, err = PlacePosition(2)
	assert.ErrorIs(t, err, ErrDayFull)
	_, err = PlacePosition(3)
	assert.ErrorIs(t, err, ErrDayFull)
}

func TestRenumberShiftsDemotesSecond(t *testing.T) {
	// Deleting position 0 from a group of two leaves the former
	// position-1 shift, which must be renumbered to 0.
	remaining := []models.Shift{{ID: "b", Position: 1}}
	updates := RenumberShifts(remaining)
	require.Len(t, updates, 1)
	assert.Equal(t, "b", updates[0].ShiftID)
	assert.Equal(t, 0, updates[0].Position)
}

func TestRenumberShiftsAlreadyDense(t *testing.T) {
	remaining := []models.Shift{{ID: "a", Position: 0}, {ID: "b", Position: 1}}
	assert.Empty(t, RenumberShifts(remaining))
	assert.Empty(t, RenumberShifts(nil))
}

func TestRenumberShiftsKeepsPriorOrder(t *testing.T) {
	// Input order must not matter; re-pack follows prior positions.
	remaining := []models.Shift{{ID: "b", Position: 1}, {ID: "a", Position: 0}}
	assert.Empty(t, RenumberShifts(remaining))
}

// dayGroup simulates the shifts of one (calendar, date) pair driven
// through the placement rules, mirroring what the store does inside
// its transactions.
type dayGroup struct {
	shifts []models.Shift
}

func (g *dayGroup) create(id string) error {
	pos, err := PlacePosition(len(g.shifts))
	if err != nil {
		return err
	}
	g.shifts = append(g.shifts, models.Shift{ID: id, Position: pos})
	return nil
}

func (g *dayGroup) deleteAt(position int) bool {
	for i, s := range g.shifts {
		if s.Position == position {
			g.shifts = append(g.shifts[:i], g.shifts[i+1:]...)
			for _, u := range RenumberShifts(g.shifts) {
				for j := range g.shifts {
					if g.shifts[j].ID == u.ShiftID {
						g.shifts[j].Position = u.Position
					}
				}
			}
			return true
		}
	}
	return false
}

func (g *dayGroup) positions() []int {
	out := make([]int, 0, len(g.shifts))
	for _, s := range g.shifts {
		out = append(out, s.Position)
	}
	return out
}

func TestDayGroupCapacityAndDensity(t *testing.T) {
	g := &dayGroup{}

	require.NoError(t, g.create("first"))
	require.NoError(t, g.create("second"))
	assert.ErrorIs(t, g.create("third"), ErrDayFull)
	assert.Len(t, g.shifts, 2, "the failed create must not add a shift")
	assert.ElementsMatch(t, []int{0, 1}, g.positions())

	// Deleting position 0 demotes the survivor to position 0.
	require.True(t, g.deleteAt(0))
	require.Len(t, g.shifts, 1)
	assert.Equal(t, "second", g.shifts[0].ID)
	assert.Equal(t, 0, g.shifts[0].Position)

	// The freed slot is usable again.
	require.NoError(t, g.create("fourth"))
	assert.ElementsMatch(t, []int{0, 1}, g.positions())

	require.True(t, g.deleteAt(1))
	require.True(t, g.deleteAt(0))
	assert.Empty(t, g.positions())
	assert.False(t, g.deleteAt(0), "deleting from an empty group reports not found")
}

package database

import (
	"database/sql"
	"fmt"
	"time"

	"workshift/app/models"
	"workshift/app/services"

	"github.com/google/uuid"
)

const shiftColumns = `s.id, s.calendar_id, COALESCE(s.template_id::text, ''), s.title, s.shift_date,
	s.start_time, s.end_time, s.color, s.position, s.created_at, s.updated_at`

func scanShift(row interface{ Scan(...any) error }) (*models.Shift, error) {
	s := &models.Shift{}
	err := row.Scan(&s.ID, &s.CalendarID, &s.TemplateID, &s.Title, &s.ShiftDate,
		&s.StartTime, &s.EndTime, &s.Color, &s.Position, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// lockCalendar serializes writers of a calendar's day groups so the
// capacity check and the following insert cannot race (two writers
// both observing count < 2). Returns sql.ErrNoRows for an unknown
// calendar.
func lockCalendar(tx *sql.Tx, calendarID string) error {
	var id string
	return tx.QueryRow(`SELECT id FROM calendars WHERE id = $1 FOR UPDATE`, calendarID).Scan(&id)
}

// CreateShift inserts a shift, assigning its position in creation
// order. The capacity check and the insert share one transaction;
// a day already holding two shifts yields services.ErrDayFull and
// nothing is created.
func CreateShift(db *sql.DB, shift *models.Shift) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := lockCalendar(tx, shift.CalendarID); err != nil {
		return err
	}

	var existing int
	err = tx.QueryRow(`SELECT COUNT(*) FROM shifts WHERE calendar_id = $1 AND shift_date = $2`,
		shift.CalendarID, shift.ShiftDate).Scan(&existing)
	if err != nil {
		return err
	}

	position, err := services.PlacePosition(existing)
	if err != nil {
		return err
	}
	shift.Position = position

	shift.ID = uuid.New().String()
	if shift.Color == "" {
		shift.Color = "#3788d8"
	}
	query := `INSERT INTO shifts (id, calendar_id, template_id, title, shift_date, start_time, end_time, color, position, created_at, updated_at)
			  VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8, $9, NOW(), NOW())
			  RETURNING created_at, updated_at`
	err = tx.QueryRow(query, shift.ID, shift.CalendarID, shift.TemplateID, shift.Title,
		shift.ShiftDate, shift.StartTime, shift.EndTime, shift.Color, shift.Position).
		Scan(&shift.CreatedAt, &shift.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert shift: %v", err)
	}

	return tx.Commit()
}

// ShiftFilters represents optional calendar and date-range conditions
// for shift listings.
type ShiftFilters struct {
	CalendarID string
	Start      *time.Time
	End        *time.Time
}

func (f ShiftFilters) apply(query string, args []any) (string, []any) {
	if f.CalendarID != "" {
		args = append(args, f.CalendarID)
		query += fmt.Sprintf(" AND s.calendar_id = $%d", len(args))
	}
	if f.Start != nil {
		args = append(args, *f.Start)
		query += fmt.Sprintf(" AND s.shift_date >= $%d", len(args))
	}
	if f.End != nil {
		args = append(args, *f.End)
		query += fmt.Sprintf(" AND s.shift_date <= $%d", len(args))
	}
	return query + " ORDER BY s.shift_date, s.position", args
}

func queryShifts(db *sql.DB, query string, args []any) ([]models.Shift, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []models.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, *s)
	}
	return shifts, rows.Err()
}

// GetShiftsByUser lists a user's shifts across calendars, optionally
// filtered, ordered by (date, position).
func GetShiftsByUser(db *sql.DB, userID string, filters ShiftFilters) ([]models.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts s
			  JOIN calendars c ON c.id = s.calendar_id
			  WHERE c.user_id = $1`
	query, args := filters.apply(query, []any{userID})
	return queryShifts(db, query, args)
}

// GetShiftsByCalendar lists one calendar's shifts for the external
// surface, optionally filtered, ordered by (date, position).
func GetShiftsByCalendar(db *sql.DB, calendarID string, start, end *time.Time) ([]models.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts s WHERE 1 = 1`
	query, args := ShiftFilters{CalendarID: calendarID, Start: start, End: end}.apply(query, nil)
	return queryShifts(db, query, args)
}

func GetShiftByID(db *sql.DB, shiftID, userID string) (*models.Shift, error) {
	if !knownID(shiftID) {
		return nil, sql.ErrNoRows
	}
	query := `SELECT ` + shiftColumns + ` FROM shifts s
			  JOIN calendars c ON c.id = s.calendar_id
			  WHERE s.id = $1 AND c.user_id = $2`
	return scanShift(db.QueryRow(query, shiftID, userID))
}

// GetShiftByCalendar looks up one of a calendar's shifts by id. Ids
// arrive unvalidated from external clients; a missing or malformed
// id finds nothing.
func GetShiftByCalendar(db *sql.DB, shiftID, calendarID string) (*models.Shift, error) {
	if !knownID(shiftID) {
		return nil, sql.ErrNoRows
	}
	query := `SELECT ` + shiftColumns + ` FROM shifts s
			  WHERE s.id = $1 AND s.calendar_id = $2`
	return scanShift(db.QueryRow(query, shiftID, calendarID))
}

// UpdateShift rewrites an authorized shift in place. Moving a shift
// to another date re-runs the capacity check on the target day and
// re-packs the day it left, so every day group stays dense and within
// the cap.
func UpdateShift(db *sql.DB, shift *models.Shift) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := lockCalendar(tx, shift.CalendarID); err != nil {
		return err
	}

	var priorDate time.Time
	var priorPosition int
	err = tx.QueryRow(`SELECT shift_date, position FROM shifts WHERE id = $1`, shift.ID).
		Scan(&priorDate, &priorPosition)
	if err != nil {
		return err
	}

	position := priorPosition
	moved := !services.DateOnly(priorDate).Equal(services.DateOnly(shift.ShiftDate))
	if moved {
		var existing int
		err = tx.QueryRow(`SELECT COUNT(*) FROM shifts WHERE calendar_id = $1 AND shift_date = $2`,
			shift.CalendarID, shift.ShiftDate).Scan(&existing)
		if err != nil {
			return err
		}
		position, err = services.PlacePosition(existing)
		if err != nil {
			return err
		}
	}
	shift.Position = position

	query := `UPDATE shifts
			  SET title = $1, shift_date = $2, start_time = $3, end_time = $4, color = $5,
				  position = $6, updated_at = NOW()
			  WHERE id = $7`
	res, err := tx.Exec(query, shift.Title, shift.ShiftDate, shift.StartTime,
		shift.EndTime, shift.Color, position, shift.ID)
	if err != nil {
		return err
	}
	if err := requireRow(res); err != nil {
		return err
	}

	if moved {
		if err := repackDay(tx, shift.CalendarID, priorDate); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// DeleteShift removes an authorized shift and re-packs its siblings'
// positions before commit, so no reader ever observes a gapped
// sequence.
func DeleteShift(db *sql.DB, shiftID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var calendarID string
	var shiftDate time.Time
	err = tx.QueryRow(`SELECT calendar_id, shift_date FROM shifts WHERE id = $1`, shiftID).
		Scan(&calendarID, &shiftDate)
	if err != nil {
		return err
	}

	if err := lockCalendar(tx, calendarID); err != nil {
		return err
	}

	res, err := tx.Exec(`DELETE FROM shifts WHERE id = $1`, shiftID)
	if err != nil {
		return err
	}
	if err := requireRow(res); err != nil {
		return err
	}
	if err := repackDay(tx, calendarID, shiftDate); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteShiftAt removes the shift at an exact (calendar, date,
// position) slot and re-packs the group.
func DeleteShiftAt(db *sql.DB, calendarID string, date time.Time, position int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := lockCalendar(tx, calendarID); err != nil {
		return err
	}

	var shiftID string
	err = tx.QueryRow(`SELECT id FROM shifts WHERE calendar_id = $1 AND shift_date = $2 AND position = $3`,
		calendarID, date, position).Scan(&shiftID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM shifts WHERE id = $1`, shiftID); err != nil {
		return err
	}
	if err := repackDay(tx, calendarID, date); err != nil {
		return err
	}
	return tx.Commit()
}

// repackDay reassigns dense positions 0..k-1 to the shifts remaining
// in a day group, ordered by prior position.
func repackDay(tx *sql.Tx, calendarID string, date time.Time) error {
	rows, err := tx.Query(`SELECT id, position FROM shifts WHERE calendar_id = $1 AND shift_date = $2 ORDER BY position`,
		calendarID, date)
	if err != nil {
		return err
	}
	defer rows.Close()

	var remaining []models.Shift
	for rows.Next() {
		var s models.Shift
		if err := rows.Scan(&s.ID, &s.Position); err != nil {
			return err
		}
		remaining = append(remaining, s)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, u := range services.RenumberShifts(remaining) {
		if _, err := tx.Exec(`UPDATE shifts SET position = $1, updated_at = NOW() WHERE id = $2`,
			u.Position, u.ShiftID); err != nil {
			return err
		}
	}
	return nil
}

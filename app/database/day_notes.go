package database

import (
	"database/sql"
	"fmt"
	"time"

	"workshift/app/models"

	"github.com/google/uuid"
)

const dayNoteColumns = `id, calendar_id, note_date, content, position, created_at, updated_at`

func scanDayNote(row interface{ Scan(...any) error }) (*models.DayNote, error) {
	n := &models.DayNote{}
	err := row.Scan(&n.ID, &n.CalendarID, &n.NoteDate, &n.Content, &n.Position,
		&n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// GetDayNoteByDate fetches the single note for a (calendar, date)
// pair, sql.ErrNoRows when the day has none.
func GetDayNoteByDate(db *sql.DB, calendarID string, date time.Time) (*models.DayNote, error) {
	return scanDayNote(db.QueryRow(`SELECT `+dayNoteColumns+` FROM day_notes WHERE calendar_id = $1 AND note_date = $2`,
		calendarID, date))
}

// UpsertDayNote creates or overwrites the single note for a
// (calendar, date) pair.
func UpsertDayNote(db *sql.DB, note *models.DayNote) (created bool, err error) {
	if note.Position == "" {
		note.Position = models.NotePositionTop
	}

	current, err := GetDayNoteByDate(db, note.CalendarID, note.NoteDate)
	if err == sql.ErrNoRows {
		note.ID = uuid.New().String()
		query := `INSERT INTO day_notes (id, calendar_id, note_date, content, position, created_at, updated_at)
				  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
				  RETURNING created_at, updated_at`
		err = db.QueryRow(query, note.ID, note.CalendarID, note.NoteDate, note.Content, note.Position).
			Scan(&note.CreatedAt, &note.UpdatedAt)
		if err != nil {
			return false, fmt.Errorf("failed to insert day note: %v", err)
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	note.ID = current.ID
	note.CreatedAt = current.CreatedAt
	query := `UPDATE day_notes SET content = $1, position = $2, updated_at = NOW() WHERE id = $3
			  RETURNING updated_at`
	err = db.QueryRow(query, note.Content, note.Position, note.ID).Scan(&note.UpdatedAt)
	return false, err
}

// GetDayNotesByUser lists a user's notes, optionally filtered by
// calendar and date range, ordered by date.
func GetDayNotesByUser(db *sql.DB, userID, calendarID string, start, end *time.Time) ([]models.DayNote, error) {
	query := `SELECT n.id, n.calendar_id, n.note_date, n.content, n.position, n.created_at, n.updated_at
			  FROM day_notes n
			  JOIN calendars c ON c.id = n.calendar_id
			  WHERE c.user_id = $1`
	args := []any{userID}
	if calendarID != "" {
		args = append(args, calendarID)
		query += fmt.Sprintf(" AND n.calendar_id = $%d", len(args))
	}
	if start != nil {
		args = append(args, *start)
		query += fmt.Sprintf(" AND n.note_date >= $%d", len(args))
	}
	if end != nil {
		args = append(args, *end)
		query += fmt.Sprintf(" AND n.note_date <= $%d", len(args))
	}
	query += " ORDER BY n.note_date"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.DayNote
	for rows.Next() {
		n, err := scanDayNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *n)
	}
	return notes, rows.Err()
}

// GetDayNotesByCalendar lists one calendar's notes for export
// composition.
func GetDayNotesByCalendar(db *sql.DB, calendarID string) ([]models.DayNote, error) {
	rows, err := db.Query(`SELECT `+dayNoteColumns+` FROM day_notes WHERE calendar_id = $1 ORDER BY note_date`,
		calendarID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.DayNote
	for rows.Next() {
		n, err := scanDayNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *n)
	}
	return notes, rows.Err()
}

func GetDayNoteByID(db *sql.DB, noteID, userID string) (*models.DayNote, error) {
	if !knownID(noteID) {
		return nil, sql.ErrNoRows
	}
	query := `SELECT n.id, n.calendar_id, n.note_date, n.content, n.position, n.created_at, n.updated_at
			  FROM day_notes n
			  JOIN calendars c ON c.id = n.calendar_id
			  WHERE n.id = $1 AND c.user_id = $2`
	return scanDayNote(db.QueryRow(query, noteID, userID))
}

func UpdateDayNote(db *sql.DB, note *models.DayNote) error {
	query := `UPDATE day_notes SET content = $1, position = $2, updated_at = NOW() WHERE id = $3`
	res, err := db.Exec(query, note.Content, note.Position, note.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func DeleteDayNote(db *sql.DB, noteID string) error {
	res, err := db.Exec(`DELETE FROM day_notes WHERE id = $1`, noteID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

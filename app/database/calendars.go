package database

import (
	"database/sql"
	"strings"
	"workshift/app/models"

	"github.com/google/uuid"
)

const calendarColumns = `id, user_id, name, COALESCE(description, ''), color, api_key, is_default, created_at, updated_at`

// NewAPIKey generates an opaque bearer key for external calendar
// access.
func NewAPIKey() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

func scanCalendar(row interface{ Scan(...any) error }) (*models.Calendar, error) {
	c := &models.Calendar{}
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.Color,
		&c.APIKey, &c.IsDefault, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func CreateCalendar(db *sql.DB, cal *models.Calendar) error {
	cal.ID = uuid.New().String()
	if cal.APIKey == "" {
		cal.APIKey = NewAPIKey()
	}
	if cal.Color == "" {
		cal.Color = "#3788d8"
	}
	query := `INSERT INTO calendars (id, user_id, name, description, color, api_key, is_default, created_at, updated_at)
			  VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, NOW(), NOW())
			  RETURNING created_at, updated_at`
	return db.QueryRow(query, cal.ID, cal.UserID, cal.Name, cal.Description,
		cal.Color, cal.APIKey, cal.IsDefault).Scan(&cal.CreatedAt, &cal.UpdatedAt)
}

func GetCalendarsByUser(db *sql.DB, userID string) ([]models.Calendar, error) {
	query := `SELECT ` + calendarColumns + ` FROM calendars WHERE user_id = $1 ORDER BY created_at`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calendars []models.Calendar
	for rows.Next() {
		c, err := scanCalendar(rows)
		if err != nil {
			return nil, err
		}
		calendars = append(calendars, *c)
	}
	return calendars, rows.Err()
}

// GetCalendarByID fetches a calendar scoped to its owner. A calendar
// owned by someone else is indistinguishable from a missing one.
func GetCalendarByID(db *sql.DB, calendarID, userID string) (*models.Calendar, error) {
	if !knownID(calendarID) {
		return nil, sql.ErrNoRows
	}
	query := `SELECT ` + calendarColumns + ` FROM calendars WHERE id = $1 AND user_id = $2`
	return scanCalendar(db.QueryRow(query, calendarID, userID))
}

func GetCalendarByAPIKey(db *sql.DB, apiKey string) (*models.Calendar, error) {
	query := `SELECT ` + calendarColumns + ` FROM calendars WHERE api_key = $1`
	return scanCalendar(db.QueryRow(query, apiKey))
}

func UpdateCalendar(db *sql.DB, cal *models.Calendar) error {
	query := `UPDATE calendars
			  SET name = $1, description = NULLIF($2, ''), color = $3, updated_at = NOW()
			  WHERE id = $4 AND user_id = $5`
	res, err := db.Exec(query, cal.Name, cal.Description, cal.Color, cal.ID, cal.UserID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteCalendar removes a calendar and everything it owns in one
// transaction. No position re-pack is needed: whole day groups
// disappear with the calendar.
func DeleteCalendar(db *sql.DB, calendarID, userID string) error {
	if !knownID(calendarID) {
		return sql.ErrNoRows
	}
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRow(`SELECT id FROM calendars WHERE id = $1 AND user_id = $2`, calendarID, userID).Scan(&id)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM shifts WHERE calendar_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM day_notes WHERE calendar_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM calendars WHERE id = $1`, id); err != nil {
		return err
	}
	return tx.Commit()
}

// EnsureDefaultCalendar returns the user's calendars, creating the
// default "My Shifts" calendar on first visit.
func EnsureDefaultCalendar(db *sql.DB, userID string) ([]models.Calendar, error) {
	calendars, err := GetCalendarsByUser(db, userID)
	if err != nil {
		return nil, err
	}
	if len(calendars) > 0 {
		return calendars, nil
	}

	cal := &models.Calendar{
		UserID:    userID,
		Name:      "My Shifts",
		IsDefault: true,
	}
	if err := CreateCalendar(db, cal); err != nil {
		return nil, err
	}
	return []models.Calendar{*cal}, nil
}

// knownID screens caller-supplied ids before they reach a UUID
// column. Postgres fails the cast on a malformed id instead of
// finding nothing, so these short-circuit to sql.ErrNoRows.
func knownID(id string) bool {
	return uuid.Validate(id) == nil
}

// requireRow converts a zero-row update/delete into sql.ErrNoRows so
// handlers report it as not found.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

package database

import (
	"database/sql"
	"workshift/app/models"

	"github.com/google/uuid"
)

const templateColumns = `id, user_id, name, start_time, end_time, color, COALESCE(description, ''), created_at, updated_at`

func scanTemplate(row interface{ Scan(...any) error }) (*models.ShiftTemplate, error) {
	t := &models.ShiftTemplate{}
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.StartTime, &t.EndTime,
		&t.Color, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func CreateShiftTemplate(db *sql.DB, t *models.ShiftTemplate) error {
	t.ID = uuid.New().String()
	if t.Color == "" {
		t.Color = "#3788d8"
	}
	query := `INSERT INTO shift_templates (id, user_id, name, start_time, end_time, color, description, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NOW(), NOW())
			  RETURNING created_at, updated_at`
	return db.QueryRow(query, t.ID, t.UserID, t.Name, t.StartTime, t.EndTime,
		t.Color, t.Description).Scan(&t.CreatedAt, &t.UpdatedAt)
}

func GetShiftTemplatesByUser(db *sql.DB, userID string) ([]models.ShiftTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM shift_templates WHERE user_id = $1 ORDER BY created_at`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []models.ShiftTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, *t)
	}
	return templates, rows.Err()
}

func GetShiftTemplateByID(db *sql.DB, templateID, userID string) (*models.ShiftTemplate, error) {
	if !knownID(templateID) {
		return nil, sql.ErrNoRows
	}
	query := `SELECT ` + templateColumns + ` FROM shift_templates WHERE id = $1 AND user_id = $2`
	return scanTemplate(db.QueryRow(query, templateID, userID))
}

func UpdateShiftTemplate(db *sql.DB, t *models.ShiftTemplate) error {
	query := `UPDATE shift_templates
			  SET name = $1, start_time = $2, end_time = $3, color = $4,
				  description = NULLIF($5, ''), updated_at = NOW()
			  WHERE id = $6 AND user_id = $7`
	res, err := db.Exec(query, t.Name, t.StartTime, t.EndTime, t.Color, t.Description, t.ID, t.UserID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteShiftTemplate removes a template. Shifts created from it keep
// their copied fields; their template reference is left dangling.
func DeleteShiftTemplate(db *sql.DB, templateID, userID string) error {
	if !knownID(templateID) {
		return sql.ErrNoRows
	}
	res, err := db.Exec(`DELETE FROM shift_templates WHERE id = $1 AND user_id = $2`, templateID, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

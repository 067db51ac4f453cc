package daynotes

import (
	"database/sql"
	"time"

	"workshift/app/config"
	"workshift/app/database"
	"workshift/app/models"
	"workshift/app/routes/auth"
	"workshift/app/services"

	"github.com/gofiber/fiber/v2"
)

type dayNoteRequest struct {
	CalendarID string `json:"calendar_id"`
	Date       string `json:"date"`
	Content    string `json:"content"`
	Position   string `json:"position"`
}

func notePayload(n *models.DayNote) fiber.Map {
	return fiber.Map{
		"id":          n.ID,
		"date":        services.DateOnly(n.NoteDate).Format(services.DateLayout),
		"content":     n.Content,
		"position":    n.Position,
		"calendar_id": n.CalendarID,
	}
}

func GetDayNotesAPI(c *fiber.Ctx) error {
	var start, end *time.Time
	if s := c.Query("start"); s != "" {
		d, err := services.ParseRangeBound(s)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		start = &d
	}
	if e := c.Query("end"); e != "" {
		d, err := services.ParseRangeBound(e)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		end = &d
	}

	notes, err := database.GetDayNotesByUser(config.GetDB(), auth.ViewUserID(c), c.Query("calendar_id"), start, end)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch day notes"})
	}

	payloads := make([]fiber.Map, 0, len(notes))
	for i := range notes {
		payloads = append(payloads, notePayload(&notes[i]))
	}
	return c.JSON(payloads)
}

// UpsertDayNoteAPI creates or overwrites the single note for a
// (calendar, date) pair.
func UpsertDayNoteAPI(c *fiber.Ctx) error {
	var req dayNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := config.GetDB()
	cal, err := database.GetCalendarByID(db, req.CalendarID, auth.ViewUserID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Calendar not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch calendar"})
	}

	date, err := services.ParseDate(req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	note := &models.DayNote{
		CalendarID: cal.ID,
		NoteDate:   date,
		Content:    req.Content,
		Position:   req.Position,
	}
	created, err := database.UpsertDayNote(db, note)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save day note"})
	}
	if created {
		return c.Status(201).JSON(fiber.Map{"id": note.ID})
	}
	return c.JSON(fiber.Map{"id": note.ID, "updated": true})
}

func GetDayNoteAPI(c *fiber.Ctx) error {
	note, err := database.GetDayNoteByID(config.GetDB(), c.Params("id"), auth.ViewUserID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Day note not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch day note"})
	}
	return c.JSON(notePayload(note))
}

func UpdateDayNoteAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	note, err := database.GetDayNoteByID(db, c.Params("id"), auth.ViewUserID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Day note not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch day note"})
	}

	req := dayNoteRequest{Content: note.Content, Position: note.Position}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	note.Content = req.Content
	note.Position = req.Position
	if err := database.UpdateDayNote(db, note); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update day note"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func DeleteDayNoteAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	note, err := database.GetDayNoteByID(db, c.Params("id"), auth.ViewUserID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Day note not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch day note"})
	}

	if err := database.DeleteDayNote(db, note.ID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete day note"})
	}
	return c.JSON(fiber.Map{"success": true})
}

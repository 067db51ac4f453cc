package external

import (
	"database/sql"
	"time"

	"workshift/app/config"
	"workshift/app/database"
	"workshift/app/models"
	"workshift/app/services"

	"github.com/gofiber/fiber/v2"
)

func eventPayload(s *models.Shift, description *string) fiber.Map {
	return fiber.Map{
		"id":          s.ID,
		"summary":     s.Title,
		"date":        services.DateOnly(s.ShiftDate).Format(services.DateLayout),
		"start_time":  s.StartTime,
		"end_time":    s.EndTime,
		"description": description,
		"position":    s.Position,
	}
}

// composeFeed loads a calendar's shifts (optionally date-filtered)
// and day notes and merges them into feed events.
func composeFeed(db *sql.DB, cal *models.Calendar, start, end *time.Time) ([]models.FeedEvent, error) {
	shifts, err := database.GetShiftsByCalendar(db, cal.ID, start, end)
	if err != nil {
		return nil, err
	}
	notes, err := database.GetDayNotesByCalendar(db, cal.ID)
	if err != nil {
		return nil, err
	}
	return services.ComposeFeed(shifts, notes)
}

// GetEventsAPI returns the calendar's feed as JSON.
func GetEventsAPI(c *fiber.Ctx) error {
	cal := calendarByKey(c, c.Params("key"))
	if cal == nil {
		return nil
	}

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

	events, err := composeFeed(config.GetDB(), cal, start, end)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compose feed"})
	}

	return c.JSON(fiber.Map{
		"calendar": fiber.Map{"id": cal.ID, "name": cal.Name},
		"events":   events,
	})
}

// CreateEventAPI creates a shift through the external API, applying
// the same capacity rules as the owner surface. A description, when
// present, upserts the day's note.
func CreateEventAPI(c *fiber.Ctx) error {
	cal := calendarByKey(c, c.Params("key"))
	if cal == nil {
		return nil
	}

	var payload services.EventPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	shift, err := createShiftFromPayload(cal, &payload)
	if err != nil {
		return respondCreateError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"id": shift.ID, "status": "created"})
}

func createShiftFromPayload(cal *models.Calendar, payload *services.EventPayload) (*models.Shift, error) {
	date, err := payload.ShiftDate()
	if err != nil {
		return nil, err
	}
	startTime, endTime := payload.Clocks()
	if _, err := services.ParseClock(startTime); err != nil {
		return nil, err
	}
	if _, err := services.ParseClock(endTime); err != nil {
		return nil, err
	}

	db := config.GetDB()
	shift := &models.Shift{
		CalendarID: cal.ID,
		Title:      payload.ShiftTitle(),
		ShiftDate:  date,
		StartTime:  startTime,
		EndTime:    endTime,
	}
	if err := database.CreateShift(db, shift); err != nil {
		return nil, err
	}

	if payload.Description != "" {
		note := &models.DayNote{CalendarID: cal.ID, NoteDate: date, Content: payload.Description}
		if _, err := database.UpsertDayNote(db, note); err != nil {
			return nil, err
		}
	}
	return shift, nil
}

func respondCreateError(c *fiber.Ctx, err error) error {
	if err == services.ErrDayFull {
		return c.Status(409).JSON(fiber.Map{"error": services.ErrDayFull.Error()})
	}
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Calendar not found"})
	}
	return c.Status(400).JSON(fiber.Map{"error": err.Error()})
}

// GetEventAPI returns one event with its date's note merged in.
func GetEventAPI(c *fiber.Ctx) error {
	cal := calendarByKey(c, c.Params("key"))
	if cal == nil {
		return nil
	}

	db := config.GetDB()
	shift, err := database.GetShiftByCalendar(db, c.Params("id"), cal.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch event"})
	}

	var description *string
	note, err := database.GetDayNoteByDate(db, cal.ID, shift.ShiftDate)
	if err != nil && err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch day note"})
	}
	if err == nil {
		description = &note.Content
	}

	return c.JSON(eventPayload(shift, description))
}

// UpdateEventAPI rewrites an event in place; a description upserts
// the note for the event's (possibly new) date.
func UpdateEventAPI(c *fiber.Ctx) error {
	cal := calendarByKey(c, c.Params("key"))
	if cal == nil {
		return nil
	}

	db := config.GetDB()
	shift, err := database.GetShiftByCalendar(db, c.Params("id"), cal.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch event"})
	}

	var payload services.EventPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if title := payload.Summary; title != "" {
		shift.Title = title
	} else if payload.Title != "" {
		shift.Title = payload.Title
	}
	if payload.Date != "" {
		date, err := services.ParseDate(payload.Date)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		shift.ShiftDate = date
	}
	if payload.StartTime != "" {
		if _, err := services.ParseClock(payload.StartTime); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		shift.StartTime = payload.StartTime
	}
	if payload.EndTime != "" {
		if _, err := services.ParseClock(payload.EndTime); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		shift.EndTime = payload.EndTime
	}

	if err := database.UpdateShift(db, shift); err != nil {
		if err == services.ErrDayFull {
			return c.Status(409).JSON(fiber.Map{"error": services.ErrDayFull.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update event"})
	}

	if payload.Description != "" {
		note := &models.DayNote{CalendarID: cal.ID, NoteDate: shift.ShiftDate, Content: payload.Description}
		if _, err := database.UpsertDayNote(db, note); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save day note"})
		}
	}
	return c.JSON(fiber.Map{"status": "updated"})
}

// DeleteEventAPI removes an event; the day's remaining shift is
// renumbered.
func DeleteEventAPI(c *fiber.Ctx) error {
	cal := calendarByKey(c, c.Params("key"))
	if cal == nil {
		return nil
	}

	db := config.GetDB()
	shift, err := database.GetShiftByCalendar(db, c.Params("id"), cal.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch event"})
	}

	if err := database.DeleteShift(db, shift.ID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete event"})
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

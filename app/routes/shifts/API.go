package shifts

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

type shiftRequest struct {
	CalendarID string `json:"calendar_id"`
	TemplateID string `json:"template_id"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Color      string `json:"color"`
}

func shiftPayload(s *models.Shift) fiber.Map {
	payload := fiber.Map{
		"id":          s.ID,
		"title":       s.Title,
		"date":        services.DateOnly(s.ShiftDate).Format(services.DateLayout),
		"start_time":  s.StartTime,
		"end_time":    s.EndTime,
		"color":       s.Color,
		"position":    s.Position,
		"calendar_id": s.CalendarID,
	}
	if s.TemplateID != "" {
		payload["template_id"] = s.TemplateID
	}
	return payload
}

// parseRangeParams reads optional start/end query bounds, truncated
// to their date components.
func parseRangeParams(c *fiber.Ctx) (start, end *time.Time, err error) {
	if s := c.Query("start"); s != "" {
		d, err := services.ParseRangeBound(s)
		if err != nil {
			return nil, nil, err
		}
		start = &d
	}
	if e := c.Query("end"); e != "" {
		d, err := services.ParseRangeBound(e)
		if err != nil {
			return nil, nil, err
		}
		end = &d
	}
	return start, end, nil
}

func GetShiftsAPI(c *fiber.Ctx) error {
	start, end, err := parseRangeParams(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	filters := database.ShiftFilters{CalendarID: c.Query("calendar_id"), Start: start, End: end}
	shifts, err := database.GetShiftsByUser(config.GetDB(), auth.ViewUserID(c), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch shifts"})
	}

	payloads := make([]fiber.Map, 0, len(shifts))
	for i := range shifts {
		payloads = append(payloads, shiftPayload(&shifts[i]))
	}
	return c.JSON(payloads)
}

func CreateShiftAPI(c *fiber.Ctx) error {
	var req shiftRequest
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
	if req.Title == "" {
		req.Title = "Shift"
	}
	if req.StartTime == "" {
		req.StartTime = "09:00"
	}
	if req.EndTime == "" {
		req.EndTime = "17:00"
	}
	for _, clock := range []string{req.StartTime, req.EndTime} {
		if _, err := services.ParseClock(clock); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	shift := &models.Shift{
		CalendarID: cal.ID,
		TemplateID: req.TemplateID,
		Title:      req.Title,
		ShiftDate:  date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Color:      req.Color,
	}
	if err := database.CreateShift(db, shift); err != nil {
		if err == services.ErrDayFull {
			return c.Status(409).JSON(fiber.Map{"error": services.ErrDayFull.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create shift"})
	}
	return c.Status(201).JSON(fiber.Map{"id": shift.ID})
}

// CreateShiftFromTemplateAPI instantiates a template onto a date,
// subject to the same day-capacity rules as direct creation.
func CreateShiftFromTemplateAPI(c *fiber.Ctx) error {
	var req shiftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := config.GetDB()
	viewUserID := auth.ViewUserID(c)

	t, err := database.GetShiftTemplateByID(db, req.TemplateID, viewUserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Template not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch template"})
	}
	cal, err := database.GetCalendarByID(db, req.CalendarID, viewUserID)
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

	shift := services.ShiftFromTemplate(t, cal.ID, date)
	if err := database.CreateShift(db, shift); err != nil {
		if err == services.ErrDayFull {
			return c.Status(409).JSON(fiber.Map{"error": services.ErrDayFull.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create shift"})
	}
	return c.Status(201).JSON(shiftPayload(shift))
}

func GetShiftAPI(c *fiber.Ctx) error {
	shift, err := database.GetShiftByID(config.GetDB(), c.Params("id"), auth.ViewUserID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Shift not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch shift"})
	}
	return c.JSON(shiftPayload(shift))
}

func UpdateShiftAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	shift, err := database.GetShiftByID(db, c.Params("id"), auth.ViewUserID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Shift not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch shift"})
	}

	req := shiftRequest{
		Title:     shift.Title,
		Date:      services.DateOnly(shift.ShiftDate).Format(services.DateLayout),
		StartTime: shift.StartTime,
		EndTime:   shift.EndTime,
		Color:     shift.Color,
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	date, err := services.ParseDate(req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	for _, clock := range []string{req.StartTime, req.EndTime} {
		if _, err := services.ParseClock(clock); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	shift.Title = req.Title
	shift.ShiftDate = date
	shift.StartTime = req.StartTime
	shift.EndTime = req.EndTime
	shift.Color = req.Color
	if err := database.UpdateShift(db, shift); err != nil {
		if err == services.ErrDayFull {
			return c.Status(409).JSON(fiber.Map{"error": services.ErrDayFull.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update shift"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteShiftAPI removes a shift; remaining shifts on the same day
// are renumbered.
func DeleteShiftAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	shift, err := database.GetShiftByID(db, c.Params("id"), auth.ViewUserID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Shift not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch shift"})
	}

	if err := database.DeleteShift(db, shift.ID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Shift not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete shift"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteShiftByDateAPI removes the shift at an exact (calendar, date,
// position) slot.
func DeleteShiftByDateAPI(c *fiber.Ctx) error {
	var req struct {
		CalendarID string `json:"calendar_id"`
		Position   int    `json:"position"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	date, err := services.ParseDate(c.Params("date"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	cal, err := database.GetCalendarByID(db, req.CalendarID, auth.ViewUserID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Calendar not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch calendar"})
	}

	if err := database.DeleteShiftAt(db, cal.ID, date, req.Position); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Shift not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete shift"})
	}
	return c.JSON(fiber.Map{"success": true})
}

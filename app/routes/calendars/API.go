package calendars

import (
	"database/sql"

	"workshift/app/config"
	"workshift/app/database"
	"workshift/app/models"
	"workshift/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

type calendarRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func GetCalendarsAPI(c *fiber.Ctx) error {
	calendars, err := database.GetCalendarsByUser(config.GetDB(), auth.ViewUserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch calendars"})
	}
	return c.JSON(calendars)
}

func CreateCalendarAPI(c *fiber.Ctx) error {
	var req calendarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name == "" {
		req.Name = "New Calendar"
	}

	cal := &models.Calendar{
		UserID:      auth.ViewUserID(c),
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}
	if err := database.CreateCalendar(config.GetDB(), cal); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create calendar"})
	}

	return c.Status(201).JSON(fiber.Map{"id": cal.ID, "api_key": cal.APIKey})
}

func GetCalendarAPI(c *fiber.Ctx) error {
	cal, err := database.GetCalendarByID(config.GetDB(), c.Params("id"), auth.ViewUserID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Calendar not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch calendar"})
	}
	return c.JSON(cal)
}

func UpdateCalendarAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	cal, err := database.GetCalendarByID(db, c.Params("id"), auth.ViewUserID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Calendar not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch calendar"})
	}

	req := calendarRequest{Name: cal.Name, Description: cal.Description, Color: cal.Color}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	cal.Name = req.Name
	cal.Description = req.Description
	cal.Color = req.Color
	if err := database.UpdateCalendar(db, cal); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update calendar"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func DeleteCalendarAPI(c *fiber.Ctx) error {
	err := database.DeleteCalendar(config.GetDB(), c.Params("id"), auth.ViewUserID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Calendar not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete calendar"})
	}
	return c.JSON(fiber.Map{"success": true})
}

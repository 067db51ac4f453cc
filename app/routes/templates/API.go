package templates

import (
	"database/sql"

	"workshift/app/config"
	"workshift/app/database"
	"workshift/app/models"
	"workshift/app/routes/auth"
	"workshift/app/services"

	"github.com/gofiber/fiber/v2"
)

type templateRequest struct {
	Name        string `json:"name"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

func GetTemplatesAPI(c *fiber.Ctx) error {
	templates, err := database.GetShiftTemplatesByUser(config.GetDB(), auth.ViewUserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch templates"})
	}
	return c.JSON(templates)
}

func CreateTemplateAPI(c *fiber.Ctx) error {
	var req templateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name == "" {
		req.Name = "New Template"
	}
	for _, clock := range []string{req.StartTime, req.EndTime} {
		if _, err := services.ParseClock(clock); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	t := &models.ShiftTemplate{
		UserID:      auth.ViewUserID(c),
		Name:        req.Name,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Color:       req.Color,
		Description: req.Description,
	}
	if err := database.CreateShiftTemplate(config.GetDB(), t); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create template"})
	}
	return c.Status(201).JSON(fiber.Map{"id": t.ID})
}

func GetTemplateAPI(c *fiber.Ctx) error {
	t, err := database.GetShiftTemplateByID(config.GetDB(), c.Params("id"), auth.ViewUserID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Template not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch template"})
	}
	return c.JSON(t)
}

func UpdateTemplateAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	t, err := database.GetShiftTemplateByID(db, c.Params("id"), auth.ViewUserID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Template not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch template"})
	}

	req := templateRequest{
		Name:        t.Name,
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
		Color:       t.Color,
		Description: t.Description,
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	for _, clock := range []string{req.StartTime, req.EndTime} {
		if _, err := services.ParseClock(clock); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	t.Name = req.Name
	t.StartTime = req.StartTime
	t.EndTime = req.EndTime
	t.Color = req.Color
	t.Description = req.Description
	if err := database.UpdateShiftTemplate(db, t); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update template"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteTemplateAPI removes a template. Shifts previously created
// from it are untouched.
func DeleteTemplateAPI(c *fiber.Ctx) error {
	err := database.DeleteShiftTemplate(config.GetDB(), c.Params("id"), auth.ViewUserID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Template not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete template"})
	}
	return c.JSON(fiber.Map{"success": true})
}

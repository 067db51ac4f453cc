package templates

import (
	"workshift/app/config"
	"workshift/app/database"
	"workshift/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupTemplateRoutes(app *fiber.App) {
	app.Get("/templates", auth.AuthMiddleware, ShowTemplatesPage)

	api := app.Group("/api/templates", auth.AuthMiddleware)
	api.Get("/", GetTemplatesAPI)
	api.Post("/", CreateTemplateAPI)
	api.Get("/:id", GetTemplateAPI)
	api.Put("/:id", UpdateTemplateAPI)
	api.Delete("/:id", DeleteTemplateAPI)
}

func ShowTemplatesPage(c *fiber.Ctx) error {
	templates, err := database.GetShiftTemplatesByUser(config.GetDB(), auth.ViewUserID(c))
	if err != nil {
		return fiber.NewError(500, "Failed to load templates")
	}

	return c.Render("templates/index", fiber.Map{
		"Title":       "Shift Templates - WorkShift Calendar",
		"CurrentPage": "templates",
		"Username":    c.Locals("username"),
		"Templates":   templates,
		"AdminMode":   auth.AdminMode(),
	})
}

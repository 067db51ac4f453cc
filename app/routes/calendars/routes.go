package calendars

import (
	"os"
	"strings"

	"workshift/app/config"
	"workshift/app/database"
	"workshift/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupCalendarRoutes(app *fiber.App) {
	app.Get("/settings", auth.AuthMiddleware, ShowSettingsPage)

	api := app.Group("/api/calendars", auth.AuthMiddleware)
	api.Get("/", GetCalendarsAPI)
	api.Post("/", CreateCalendarAPI)
	api.Get("/:id", GetCalendarAPI)
	api.Put("/:id", UpdateCalendarAPI)
	api.Delete("/:id", DeleteCalendarAPI)
}

// ShowSettingsPage lists calendars with their external feed URLs.
func ShowSettingsPage(c *fiber.Ctx) error {
	viewUserID := auth.ViewUserID(c)
	calendars, err := database.GetCalendarsByUser(config.GetDB(), viewUserID)
	if err != nil {
		return fiber.NewError(500, "Failed to load calendars")
	}

	return c.Render("settings/index", fiber.Map{
		"Title":       "Settings - WorkShift Calendar",
		"CurrentPage": "settings",
		"Username":    c.Locals("username"),
		"Calendars":   calendars,
		"AdminMode":   auth.AdminMode(),
		"BaseURL":     externalBaseURL(c),
	})
}

// externalBaseURL is the address external consumers should use for
// feeds and webhooks: EXTERNAL_URL when configured, otherwise the
// request root.
func externalBaseURL(c *fiber.Ctx) string {
	if external := strings.TrimSpace(os.Getenv("EXTERNAL_URL")); external != "" {
		return strings.TrimRight(external, "/")
	}
	return c.Protocol() + "://" + c.Hostname()
}

package external

import (
	"database/sql"

	"workshift/app/config"
	"workshift/app/database"
	"workshift/app/models"

	"github.com/gofiber/fiber/v2"
)

// SetupExternalRoutes registers the API-key surface: the ics feed,
// the v1 events API and the webhook receiver. None of these require
// owner authentication; the key is the capability.
func SetupExternalRoutes(app *fiber.App) {
	app.Get("/ics/:file", GetICSFeed)

	v1 := app.Group("/api/v1/calendar/:key")
	v1.Get("/events", GetEventsAPI)
	v1.Post("/events", CreateEventAPI)
	v1.Get("/events/:id", GetEventAPI)
	v1.Put("/events/:id", UpdateEventAPI)
	v1.Delete("/events/:id", DeleteEventAPI)

	app.Post("/webhook/:key", WebhookReceiver)
}

// calendarByKey resolves the API key path segment, writing the error
// response itself when the key is unknown. A wrong key and a missing
// calendar behave identically.
func calendarByKey(c *fiber.Ctx, key string) *models.Calendar {
	cal, err := database.GetCalendarByAPIKey(config.GetDB(), key)
	if err != nil {
		if err == sql.ErrNoRows {
			c.Status(404).JSON(fiber.Map{"error": "Calendar not found"})
		} else {
			c.Status(500).JSON(fiber.Map{"error": "Failed to fetch calendar"})
		}
		return nil
	}
	return cal
}

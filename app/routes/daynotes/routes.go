package daynotes

import (
	"workshift/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDayNoteRoutes(app *fiber.App) {
	api := app.Group("/api/day-notes", auth.AuthMiddleware)
	api.Get("/", GetDayNotesAPI)
	api.Post("/", UpsertDayNoteAPI)
	api.Get("/:id", GetDayNoteAPI)
	api.Put("/:id", UpdateDayNoteAPI)
	api.Delete("/:id", DeleteDayNoteAPI)
}

package shifts

import (
	"workshift/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupShiftRoutes(app *fiber.App) {
	api := app.Group("/api/shifts", auth.AuthMiddleware)
	api.Get("/", GetShiftsAPI)
	api.Post("/", CreateShiftAPI)
	api.Post("/from-template", CreateShiftFromTemplateAPI)
	api.Delete("/by-date/:date", DeleteShiftByDateAPI)
	api.Get("/:id", GetShiftAPI)
	api.Put("/:id", UpdateShiftAPI)
	api.Delete("/:id", DeleteShiftAPI)
}

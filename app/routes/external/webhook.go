package external

import (
	"database/sql"

	"workshift/app/config"
	"workshift/app/database"
	"workshift/app/services"

	"github.com/gofiber/fiber/v2"
)

// WebhookReceiver dispatches pushed actions onto a calendar. Unknown
// actions are a handled classification, not a failure of the
// receiver.
func WebhookReceiver(c *fiber.Ctx) error {
	cal := calendarByKey(c, c.Params("key"))
	if cal == nil {
		return nil
	}

	var payload services.EventPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	switch services.ClassifyAction(payload.Action) {
	case services.ActionCreate:
		shift, err := createShiftFromPayload(cal, &payload)
		if err != nil {
			return respondCreateError(c, err)
		}
		return c.Status(201).JSON(fiber.Map{"status": "created", "id": shift.ID})

	case services.ActionDelete:
		shift, err := database.GetShiftByCalendar(config.GetDB(), payload.EventID, cal.ID)
		if err == nil {
			err = database.DeleteShift(config.GetDB(), shift.ID)
		}
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Status(404).JSON(fiber.Map{"status": "not_found"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to delete shift"})
		}
		return c.JSON(fiber.Map{"status": "deleted"})

	default:
		return c.Status(400).JSON(fiber.Map{"status": services.ActionUnknown})
	}
}

package external

import (
	"fmt"
	"strings"

	"workshift/app/config"
	"workshift/app/services"

	"github.com/gofiber/fiber/v2"
)

// GetICSFeed serves the calendar as an iCalendar document at
// /ics/{api_key}.ics.
func GetICSFeed(c *fiber.Ctx) error {
	key := strings.TrimSuffix(c.Params("file"), ".ics")
	cal := calendarByKey(c, key)
	if cal == nil {
		return nil
	}

	events, err := composeFeed(config.GetDB(), cal, nil, nil)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compose feed"})
	}

	c.Set("Content-Type", "text/calendar; charset=utf-8")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", cal.Name+".ics"))
	return c.SendString(services.CalendarDocument(cal, events))
}

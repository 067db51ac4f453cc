package dashboard

import (
	"workshift/app/config"
	"workshift/app/database"
	"workshift/app/models"
	"workshift/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/", GetDashboard)
}

// GetDashboard renders the calendar dashboard for authenticated
// visitors and the landing page otherwise. A user's first visit
// creates their default calendar.
func GetDashboard(c *fiber.Ctx) error {
	claims, err := auth.ValidateJWT(c.Cookies("jwt_token"))
	if err != nil {
		return c.Render("landing", fiber.Map{
			"Title": "WorkShift Calendar",
		}, "")
	}
	c.Locals("user_id", claims.UserID)
	c.Locals("username", claims.Username)

	db := config.GetDB()
	viewUserID := auth.ViewUserID(c)

	calendars, err := database.EnsureDefaultCalendar(db, viewUserID)
	if err != nil {
		return fiber.NewError(500, "Failed to load calendars")
	}

	templates, err := database.GetShiftTemplatesByUser(db, viewUserID)
	if err != nil {
		return fiber.NewError(500, "Failed to load templates")
	}

	var allUsers []models.User
	if auth.AdminMode() {
		if allUsers, err = database.GetAllUsers(db); err != nil {
			return fiber.NewError(500, "Failed to load users")
		}
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - WorkShift Calendar",
		"CurrentPage": "dashboard",
		"Username":    claims.Username,
		"ViewUserID":  viewUserID,
		"Calendars":   calendars,
		"Templates":   templates,
		"AdminMode":   auth.AdminMode(),
		"AllUsers":    allUsers,
	})
}

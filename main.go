package main

import (
	"encoding/json"
	htmltemplate "html/template"
	"log"
	"os"
	"strings"

	"workshift/app/config"
	"workshift/app/database"
	"workshift/app/routes/auth"
	"workshift/app/routes/calendars"
	"workshift/app/routes/dashboard"
	"workshift/app/routes/daynotes"
	"workshift/app/routes/external"
	"workshift/app/routes/shifts"
	"workshift/app/routes/templates"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler renders JSON for machine-facing paths and error
// templates for web pages.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	path := c.Path()
	isMachine := strings.HasPrefix(path, "/api") ||
		strings.HasPrefix(path, "/webhook") ||
		strings.HasPrefix(path, "/ics")
	if isMachine {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title": "Page Not Found - WorkShift Calendar",
		}, "")
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title": "Server Error - WorkShift Calendar",
		}, "")
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - WorkShift Calendar",
			"ErrorCode":    code,
			"ErrorMessage": err.Error(),
		}, "")
	}
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (htmltemplate.JS, error) {
		b, err := json.Marshal(v)
		return htmltemplate.JS(b), err
	})

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	// Routes
	dashboard.SetupDashboardRoutes(app)
	auth.SetupAuthRoutes(app)
	calendars.SetupCalendarRoutes(app)
	templates.SetupTemplateRoutes(app)
	shifts.SetupShiftRoutes(app)
	daynotes.SetupDayNoteRoutes(app)
	external.SetupExternalRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8099"
	}
	log.Printf("WorkShift Calendar listening on :%s", port)
	log.Fatal(app.Listen(":" + port))
}

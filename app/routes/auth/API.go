package auth

import (
	"database/sql"
	"time"

	"workshift/app/config"
	"workshift/app/database"
	"workshift/app/models"

	"github.com/gofiber/fiber/v2"
)

type credentialsRequest struct {
	Username        string `json:"username" form:"username"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

func LoginAPI(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	user, err := database.GetUserByUsername(config.GetDB(), req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid username or password"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.Password, user.PasswordHash) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid username or password"})
	}

	return issueSession(c, user)
}

func RegisterAPI(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if len(req.Username) < 3 {
		return c.Status(400).JSON(fiber.Map{"error": "Username must be at least 3 characters"})
	}
	if len(req.Password) < 4 {
		return c.Status(400).JSON(fiber.Map{"error": "Password must be at least 4 characters"})
	}
	if req.Password != req.ConfirmPassword {
		return c.Status(400).JSON(fiber.Map{"error": "Passwords do not match"})
	}

	db := config.GetDB()
	if _, err := database.GetUserByUsername(db, req.Username); err == nil {
		return c.Status(409).JSON(fiber.Map{"error": "Username already exists"})
	} else if err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{Username: req.Username, PasswordHash: hash}
	if err := database.CreateUser(db, user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return issueSession(c, user)
}

func issueSession(c *fiber.Ctx, user *models.User) error {
	token, err := GenerateJWT(user.ID, user.Username)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	// Clear session cookies
	for _, name := range []string{"jwt_token", "admin_view_user"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
		})
	}

	return c.Redirect("/login")
}

package handlers

import (
	"regulariza/internal/navigation"

	"github.com/gofiber/fiber/v2"
)

// Navigation returns the screen catalog and wizard flow for clients.
func Navigation(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"initial": navigation.Initial().Screen,
		"screens": navigation.Screens(),
		"flow":    navigation.Flow(),
	})
}

package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"zesto/internal/services"
)

// respondError translates a service error into a user-facing JSON response.
// Every domain error kind maps to a status here; nothing propagates far
// enough to crash the process.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	var persistenceErr *services.PersistenceError

	switch {
	case errors.Is(err, services.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Your cart is empty",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrAuthRequired):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Please log in to continue",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrOrderNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Order not found",
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid username or password. Please try again.",
		})
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"field":   validationErr.Field,
			"error":   validationErr.Message,
		})
	case errors.As(err, &persistenceErr):
		log.Printf("Persistence error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error processing your request. Please try again.",
		})
	default:
		log.Printf("Unhandled error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong. Please try again.",
		})
	}
}

package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CartSessionCookie is the cookie carrying the shopper's session ID. The
// cart lives under this ID, so it survives across requests without login.
const CartSessionCookie = "cart_session"

// CartSession ensures every request carries a cart session ID, minting one
// if the cookie is absent, and exposes it via Locals("cart_session").
func CartSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(CartSessionCookie)
		if sessionID == "" {
			sessionID = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     CartSessionCookie,
				Value:    sessionID,
				Path:     "/",
				HTTPOnly: true,
			})
		}

		c.Locals("cart_session", sessionID)
		return c.Next()
	}
}

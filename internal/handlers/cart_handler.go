package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"zesto/internal/models"
	"zesto/internal/services"
)

// CartHandler handles HTTP requests for the session cart.
type CartHandler struct {
	cart *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cart *services.CartService) *CartHandler {
	return &CartHandler{
		cart: cart,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app. All of them
// expect the cart-session middleware to have run first.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleViewCart)
	cartRoutes.Post("/items/:key", h.HandleAddItem)
	cartRoutes.Delete("/items/:key", h.HandleRemoveItem)
}

func sessionID(c *fiber.Ctx) string {
	if sid, ok := c.Locals("cart_session").(string); ok {
		return sid
	}
	return ""
}

func cartResponse(cart *models.Cart) fiber.Map {
	return fiber.Map{
		"lines":      cart.Lines,
		"total":      cart.Total(),
		"line_count": cart.LineCount(),
	}
}

// HandleViewCart returns the session's cart snapshot and total.
func (h *CartHandler) HandleViewCart(c *fiber.Ctx) error {
	cart, total, err := h.cart.ViewCart(c.Context(), sessionID(c))
	if err != nil {
		log.Printf("Error viewing cart: %v", err)
		return respondError(c, err)
	}
	resp := cartResponse(cart)
	resp["total"] = total
	return c.JSON(resp)
}

// HandleAddItem adds one unit of the product to the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	key := c.Params("key")
	cart, err := h.cart.AddToCart(c.Context(), sessionID(c), key)
	if err != nil {
		log.Printf("Error adding %s to cart: %v", key, err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(cartResponse(cart))
}

// HandleRemoveItem removes the product's line from the cart. Removing an
// absent product succeeds with the cart unchanged.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	key := c.Params("key")
	cart, err := h.cart.RemoveFromCart(c.Context(), sessionID(c), key)
	if err != nil {
		log.Printf("Error removing %s from cart: %v", key, err)
		return respondError(c, err)
	}
	return c.JSON(cartResponse(cart))
}

package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"zesto/internal/services"
)

// OrderHandler handles checkout, order history, and profile requests. All
// of its routes require an authenticated user.
type OrderHandler struct {
	checkoutService *services.CheckoutService
	orderService    *services.OrderService
	authService     *services.AuthService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(checkoutService *services.CheckoutService, orderService *services.OrderService, authService *services.AuthService) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
		authService:     authService,
	}
}

// RegisterRoutes registers the order routes behind the given auth
// middleware.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Post("/checkout", authRequired, h.HandleCheckout)
	orderRoutes := router.Group("/orders", authRequired)
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	profileRoutes := router.Group("/profile", authRequired)
	profileRoutes.Get("/", h.HandleGetProfile)
	profileRoutes.Put("/address", h.HandleUpdateAddress)
}

func userID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("user_id").(uint); ok {
		return id
	}
	return 0
}

// HandleCheckout converts the session's cart into an order.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var req services.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing checkout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	order, err := h.checkoutService.Checkout(c.Context(), sessionID(c), userID(c), req)
	if err != nil {
		log.Printf("Error during checkout for user %d: %v", userID(c), err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Order placed successfully!",
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
		"status":       order.Status,
	})
}

// HandleGetOrders retrieves the authenticated user's orders, newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.GetOrdersByUser(userID(c))
	if err != nil {
		log.Printf("Error getting orders for user %d: %v", userID(c), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"orders": orders,
	})
}

// HandleGetOrderByID retrieves a single order owned by the authenticated
// user.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil || orderID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid order ID",
		})
	}

	order, err := h.orderService.GetOrderForUser(uint(orderID), userID(c))
	if err != nil {
		log.Printf("Error getting order %d for user %d: %v", orderID, userID(c), err)
		return respondError(c, err)
	}
	return c.JSON(order)
}

// HandleGetProfile returns the user record together with purchase stats.
func (h *OrderHandler) HandleGetProfile(c *fiber.Ctx) error {
	user, err := h.authService.GetUser(userID(c))
	if err != nil {
		log.Printf("Error loading profile for user %d: %v", userID(c), err)
		return respondError(c, err)
	}
	stats, err := h.orderService.StatsForUser(userID(c))
	if err != nil {
		log.Printf("Error loading stats for user %d: %v", userID(c), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"user":  user,
		"stats": stats,
	})
}

// HandleUpdateAddress replaces the user's stored shipping address.
func (h *OrderHandler) HandleUpdateAddress(c *fiber.Ctx) error {
	var req struct {
		Address string `json:"address"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.authService.UpdateAddress(userID(c), req.Address); err != nil {
		log.Printf("Error updating address for user %d: %v", userID(c), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Address updated successfully!",
	})
}

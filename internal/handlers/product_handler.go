package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"zesto/internal/services"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	catalog *services.CatalogService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalog *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
	router.Get("/products/:key", h.HandleGetProduct)
	router.Get("/categories", h.HandleListCategories)
}

// HandleListProducts lists the catalog, optionally filtered by the
// `category` query parameter.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	category := c.Query("category")
	products, err := h.catalog.ListProducts(category)
	if err != nil {
		log.Printf("Error listing products (category=%q): %v", category, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"products": products,
		"category": category,
	})
}

// HandleGetProduct retrieves a single product by its key.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	key := c.Params("key")
	product, err := h.catalog.GetProductByKey(key)
	if err != nil {
		log.Printf("Error getting product by key %s: %v", key, err)
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleListCategories lists the distinct product categories.
func (h *ProductHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.catalog.Categories()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"categories": categories,
	})
}

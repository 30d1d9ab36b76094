package repositories

import (
	"zesto/internal/models"
)

// ProductRepository defines the interface for product data access. The
// catalog is read-mostly: writes happen only during seeding.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByCategory(category string) ([]models.Product, error)
	GetByKey(key string) (*models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Categories() ([]string, error)
	Create(product *models.Product) error
	Count() (int64, error)
}

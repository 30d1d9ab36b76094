package repositories

import (
	"github.com/shopspring/decimal"

	"zesto/internal/models"
)

// OrderRepository defines the interface for order data access. Create must
// persist the order together with all of its items atomically: either the
// whole aggregate commits or nothing does.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByUser(userID uint) ([]models.Order, error)
	CountByUser(userID uint) (int64, error)
	TotalSpentByUser(userID uint) (decimal.Decimal, error)
}

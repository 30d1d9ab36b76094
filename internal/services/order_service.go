package services

import (
	"errors"

	"github.com/shopspring/decimal"

	"zesto/internal/models"
	"zesto/internal/repositories"
)

// UserStats summarizes a user's purchase history for the storefront's
// profile and landing pages.
type UserStats struct {
	OrderCount int64           `json:"recent_orders_count"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// OrderService handles queries over placed orders. Orders are immutable
// after creation in this service; there is no status-update flow here.
type OrderService struct {
	orderRepo repositories.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// GetOrdersByUser retrieves the user's orders, newest first.
func (s *OrderService) GetOrdersByUser(userID uint) ([]models.Order, error) {
	orders, err := s.orderRepo.GetByUser(userID)
	if err != nil {
		return nil, &PersistenceError{Op: "load orders", Err: err}
	}
	return orders, nil
}

// GetOrderForUser retrieves one order, but only if it belongs to the
// requesting user. A foreign or missing order is reported identically so
// order IDs cannot be probed.
func (s *OrderService) GetOrderForUser(orderID, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, &PersistenceError{Op: "load order", Err: err}
	}
	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// StatsForUser returns the user's order count and lifetime spend.
func (s *OrderService) StatsForUser(userID uint) (*UserStats, error) {
	count, err := s.orderRepo.CountByUser(userID)
	if err != nil {
		return nil, &PersistenceError{Op: "count orders", Err: err}
	}
	total, err := s.orderRepo.TotalSpentByUser(userID)
	if err != nil {
		return nil, &PersistenceError{Op: "sum orders", Err: err}
	}
	return &UserStats{OrderCount: count, TotalSpent: total}, nil
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	"zesto/internal/models"
	"zesto/internal/repositories"
	"zesto/internal/session"
)

// EventPublisher is the messaging surface the checkout flow needs. The
// RabbitMQ client satisfies it; tests supply a mock.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// CheckoutRequest carries the shipping and payment details the user submits
// at checkout.
type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address" validate:"required"`
	ContactNumber   string `json:"contact_number" validate:"required,max=20"`
	PaymentMethod   string `json:"payment_method" validate:"required,max=50"`
}

// CheckoutService converts a non-empty cart into a durable order plus its
// items, atomically. On success the cart is cleared and an order.created
// event is published; on any storage failure everything rolls back and the
// cart is left exactly as it was so the user can retry.
type CheckoutService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	store       session.CartStore
	publisher   EventPublisher
	validate    *validator.Validate
}

// NewCheckoutService creates a new CheckoutService. publisher may be nil
// when the broker is unavailable; checkout then skips event publication.
func NewCheckoutService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, store session.CartStore, publisher EventPublisher) *CheckoutService {
	return &CheckoutService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		store:       store,
		publisher:   publisher,
		validate:    validator.New(),
	}
}

// Checkout places an order from the session's cart.
//
// Preconditions, checked in order with zero side effects on failure:
// a non-empty cart, an authenticated user, and well-formed shipping input.
// Every cart line is then re-resolved against the catalog; a product that
// vanished since it was added aborts the whole checkout rather than being
// silently dropped, so the persisted order always matches the cart the user
// confirmed. Quantity and unit price come from the cart's snapshots, never
// from the current catalog price.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string, userID uint, req CheckoutRequest) (*models.Order, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, &PersistenceError{Op: "load cart", Err: err}
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if userID == 0 {
		return nil, ErrAuthRequired
	}
	if err := s.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			first := validationErrors[0]
			return nil, &ValidationError{
				Field:   first.Field(),
				Message: fmt.Sprintf("failed on the '%s' rule", first.Tag()),
			}
		}
		return nil, &ValidationError{Field: "request", Message: err.Error()}
	}

	order := &models.Order{
		UserID:          userID,
		TotalAmount:     cart.Total(),
		ShippingAddress: req.ShippingAddress,
		ContactNumber:   req.ContactNumber,
		PaymentMethod:   req.PaymentMethod,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now(),
	}

	for key, line := range cart.Lines {
		product, err := s.productRepo.GetByKey(key)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s is no longer available", ErrProductNotFound, key)
			}
			return nil, &PersistenceError{Op: "resolve product", Err: err}
		}
		order.Items = append(order.Items, models.OrderItem{
			ProductID:    product.ID,
			Quantity:     line.Quantity,
			PricePerUnit: line.Price,
		})
	}

	// Order and items commit together or not at all; see OrderRepository.
	if err := s.orderRepo.Create(order); err != nil {
		return nil, &PersistenceError{Op: "create order", Err: err}
	}

	if err := s.store.Clear(ctx, sessionID); err != nil {
		// The order is already committed; a stale cart is recoverable, a
		// lost order is not. Log and move on.
		log.Printf("Warning: failed to clear cart for session %s after order %d: %v", sessionID, order.ID, err)
	}

	s.publishOrderCreated(order)

	return order, nil
}

// publishOrderCreated emits an order.created event. Publication is
// best-effort: the order is already durable, so a broker hiccup must not
// fail the checkout.
func (s *CheckoutService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		log.Println("Event publisher is not configured. Skipping order.created publication.")
		return
	}

	payload := map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.TotalAmount,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal order.created event for order %d: %v", order.ID, err)
		return
	}
	if err := s.publisher.Publish("order", "order.created", body); err != nil {
		log.Printf("Warning: failed to publish order.created event for order %d: %v", order.ID, err)
		return
	}
	log.Printf("Published order.created event for order %d", order.ID)
}

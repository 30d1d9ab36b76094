package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"zesto/internal/models"
	"zesto/internal/repositories"
	"zesto/internal/session"
)

// CartService handles the per-session shopping cart: validated additions,
// idempotent removals, and cart views. Prices and names are snapshotted
// into the cart at add-time so the total shown at checkout matches what the
// user saw while shopping, regardless of concurrent catalog edits.
type CartService struct {
	productRepo repositories.ProductRepository
	store       session.CartStore
}

// NewCartService creates a new CartService.
func NewCartService(productRepo repositories.ProductRepository, store session.CartStore) *CartService {
	return &CartService{
		productRepo: productRepo,
		store:       store,
	}
}

// AddToCart validates the product key against the catalog and adds one unit
// to the session's cart. An unknown key returns ErrProductNotFound and
// leaves the cart untouched.
func (s *CartService) AddToCart(ctx context.Context, sessionID, productKey string) (*models.Cart, error) {
	product, err := s.productRepo.GetByKey(productKey)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productKey)
		}
		return nil, &PersistenceError{Op: "load product", Err: err}
	}

	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, &PersistenceError{Op: "load cart", Err: err}
	}

	cart.Add(product)

	if err := s.store.Put(ctx, sessionID, cart); err != nil {
		return nil, &PersistenceError{Op: "save cart", Err: err}
	}
	return cart, nil
}

// RemoveFromCart deletes the line for the given product key. Removing a key
// that is not in the cart is a no-op, not an error.
func (s *CartService) RemoveFromCart(ctx context.Context, sessionID, productKey string) (*models.Cart, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, &PersistenceError{Op: "load cart", Err: err}
	}

	cart.Remove(productKey)

	if err := s.store.Put(ctx, sessionID, cart); err != nil {
		return nil, &PersistenceError{Op: "save cart", Err: err}
	}
	return cart, nil
}

// ViewCart returns the session's cart and its total.
func (s *CartService) ViewCart(ctx context.Context, sessionID string) (*models.Cart, decimal.Decimal, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, decimal.Zero, &PersistenceError{Op: "load cart", Err: err}
	}
	return cart, cart.Total(), nil
}

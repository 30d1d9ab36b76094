package session

import (
	"context"
	"sync"

	"zesto/internal/models"
)

// MemoryCartStore is an in-memory implementation of CartStore. It backs the
// unit tests and the no-Redis boot path. Carts are stored and returned as
// copies so callers never share a live map with the store.
type MemoryCartStore struct {
	carts map[string]*models.Cart
	mu    sync.RWMutex
}

// NewMemoryCartStore creates a new instance of MemoryCartStore.
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{
		carts: make(map[string]*models.Cart),
	}
}

// Get returns a copy of the session's cart, or a fresh empty cart if the
// session has none.
func (s *MemoryCartStore) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return models.NewCart(), nil
	}
	return cart.Clone(), nil
}

// Put stores a copy of the cart for the session.
func (s *MemoryCartStore) Put(ctx context.Context, sessionID string, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[sessionID] = cart.Clone()
	return nil
}

// Clear deletes the session's cart. Clearing an absent cart is a no-op.
func (s *MemoryCartStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}

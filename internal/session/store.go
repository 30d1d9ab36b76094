// Package session owns the per-session cart storage. Carts cross this
// boundary as typed values; (de)serialization happens inside the store
// implementations, never in the callers.
package session

import (
	"context"

	"zesto/internal/models"
)

// CartStore persists one cart per session. Get on a session that has no
// cart yet returns a fresh empty cart, not an error. Concurrent requests
// within the same session are last-write-wins; the store does no locking.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (*models.Cart, error)
	Put(ctx context.Context, sessionID string, cart *models.Cart) error
	Clear(ctx context.Context, sessionID string) error
}

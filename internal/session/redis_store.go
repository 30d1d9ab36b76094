package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"zesto/internal/models"
)

// RedisCartStore keeps carts in Redis as JSON blobs under a per-session
// key, with a TTL so abandoned carts expire on their own.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartStore creates a Redis-backed cart store.
func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisCartStore{
		client: client,
		ttl:    ttl,
	}
}

// Get loads the cart for the session. A missing key yields a fresh empty
// cart.
func (s *RedisCartStore) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get cart failed: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	if cart.Lines == nil {
		cart.Lines = make(map[string]models.CartLine)
	}
	return &cart, nil
}

// Put stores the cart for the session, refreshing its TTL.
func (s *RedisCartStore) Put(ctx context.Context, sessionID string, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart failed: %w", err)
	}
	return nil
}

// Clear deletes the session's cart. Clearing an absent cart is a no-op.
func (s *RedisCartStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete cart failed: %w", err)
	}
	return nil
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

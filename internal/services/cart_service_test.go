package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"zesto/internal/models"
	"zesto/internal/repositories"
	"zesto/internal/services"
	"zesto/internal/session"
)

const testSession = "session-abc"

func newCartFixture() (*services.CartService, *MockProductRepository, *session.MemoryCartStore) {
	mockRepo := new(MockProductRepository)
	store := session.NewMemoryCartStore()
	return services.NewCartService(mockRepo, store), mockRepo, store
}

func milkProduct() *models.Product {
	return &models.Product{ID: 1, ProductKey: "milk", Name: "Organic Milk", Price: decimal.NewFromInt(60), Category: "Dairy"}
}

func TestCartService_AddToCart(t *testing.T) {
	service, mockRepo, _ := newCartFixture()
	ctx := context.Background()

	mockRepo.On("GetByKey", "milk").Return(milkProduct(), nil).Twice()

	cart, err := service.AddToCart(ctx, testSession, "milk")
	assert.NoError(t, err)
	assert.Equal(t, 1, cart.LineCount())

	// A second add increments the existing line instead of inserting.
	cart, err = service.AddToCart(ctx, testSession, "milk")
	assert.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines["milk"].Quantity)
	mockRepo.AssertExpectations(t)
}

func TestCartService_AddUnknownKeyLeavesCartUnchanged(t *testing.T) {
	service, mockRepo, store := newCartFixture()
	ctx := context.Background()

	mockRepo.On("GetByKey", "milk").Return(milkProduct(), nil).Once()
	_, err := service.AddToCart(ctx, testSession, "milk")
	assert.NoError(t, err)

	mockRepo.On("GetByKey", "caviar").Return(nil, fmt.Errorf("product with key caviar: %w", repositories.ErrNotFound)).Once()
	cart, err := service.AddToCart(ctx, testSession, "caviar")
	assert.Nil(t, cart)
	assert.ErrorIs(t, err, services.ErrProductNotFound)

	// The stored cart is byte-for-byte what it was before the bad add.
	stored, storeErr := store.Get(ctx, testSession)
	assert.NoError(t, storeErr)
	assert.Len(t, stored.Lines, 1)
	assert.Equal(t, 1, stored.Lines["milk"].Quantity)
	mockRepo.AssertExpectations(t)
}

func TestCartService_RemoveFromCartIsIdempotent(t *testing.T) {
	service, mockRepo, _ := newCartFixture()
	ctx := context.Background()

	mockRepo.On("GetByKey", "milk").Return(milkProduct(), nil).Once()
	_, err := service.AddToCart(ctx, testSession, "milk")
	assert.NoError(t, err)

	cart, err := service.RemoveFromCart(ctx, testSession, "milk")
	assert.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	// Removing again is not an error and changes nothing.
	cart, err = service.RemoveFromCart(ctx, testSession, "milk")
	assert.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_AddThenRemoveMatchesUntouchedCart(t *testing.T) {
	service, mockRepo, _ := newCartFixture()
	ctx := context.Background()

	oranges := &models.Product{ID: 3, ProductKey: "oranges", Name: "Oranges", Price: decimal.NewFromInt(80)}
	mockRepo.On("GetByKey", "oranges").Return(oranges, nil).Once()

	_, err := service.AddToCart(ctx, testSession, "oranges")
	assert.NoError(t, err)
	_, err = service.RemoveFromCart(ctx, testSession, "oranges")
	assert.NoError(t, err)

	cart, total, err := service.ViewCart(ctx, testSession)
	assert.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.True(t, total.IsZero())

	untouched, _, err := service.ViewCart(ctx, "never-used-session")
	assert.NoError(t, err)
	assert.Equal(t, untouched.Lines, cart.Lines)
}

func TestCartService_ViewCartTotal(t *testing.T) {
	service, mockRepo, _ := newCartFixture()
	ctx := context.Background()

	bread := &models.Product{ID: 2, ProductKey: "bread", Name: "Whole Wheat Bread", Price: decimal.NewFromInt(40)}
	mockRepo.On("GetByKey", "milk").Return(milkProduct(), nil).Twice()
	mockRepo.On("GetByKey", "bread").Return(bread, nil).Once()

	for _, key := range []string{"milk", "milk", "bread"} {
		_, err := service.AddToCart(ctx, testSession, key)
		assert.NoError(t, err)
	}

	cart, total, err := service.ViewCart(ctx, testSession)
	assert.NoError(t, err)
	assert.Equal(t, 3, cart.LineCount())
	assert.True(t, total.Equal(decimal.NewFromInt(160)), "expected 160, got %s", total)
}

package services_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"zesto/internal/models"
	"zesto/internal/repositories"
	"zesto/internal/services"
)

func TestOrderService_GetOrderForUser(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo)

	order := &models.Order{ID: 101, UserID: 7, TotalAmount: decimal.NewFromInt(160)}

	mockRepo.On("GetByID", uint(101)).Return(order, nil).Once()
	got, err := service.GetOrderForUser(101, 7)
	assert.NoError(t, err)
	assert.Equal(t, order, got)
	mockRepo.AssertExpectations(t)

	// Someone else's order looks exactly like a missing one.
	mockRepo.On("GetByID", uint(101)).Return(order, nil).Once()
	_, err = service.GetOrderForUser(101, 8)
	assert.ErrorIs(t, err, services.ErrOrderNotFound)

	mockRepo.On("GetByID", uint(999)).Return(nil, fmt.Errorf("order with ID 999: %w", repositories.ErrNotFound)).Once()
	_, err = service.GetOrderForUser(999, 7)
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_StatsForUser(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo)

	mockRepo.On("CountByUser", uint(7)).Return(int64(3), nil).Once()
	mockRepo.On("TotalSpentByUser", uint(7)).Return(decimal.NewFromInt(480), nil).Once()

	stats, err := service.StatsForUser(7)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.OrderCount)
	assert.True(t, stats.TotalSpent.Equal(decimal.NewFromInt(480)))
	mockRepo.AssertExpectations(t)
}

func TestOrderService_GetOrdersByUser(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo)

	expected := []models.Order{
		{ID: 102, UserID: 7},
		{ID: 101, UserID: 7},
	}
	mockRepo.On("GetByUser", uint(7)).Return(expected, nil).Once()

	orders, err := service.GetOrdersByUser(7)
	assert.NoError(t, err)
	assert.Equal(t, expected, orders)
	mockRepo.AssertExpectations(t)
}

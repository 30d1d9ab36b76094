package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"zesto/internal/models"
	"zesto/internal/repositories"
)

// CatalogService handles business logic for the product catalog. The
// catalog is read-mostly: after the one-time seed, nothing in this service
// mutates it.
type CatalogService struct {
	repo repositories.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListProducts retrieves all products, optionally filtered by category.
func (s *CatalogService) ListProducts(category string) ([]models.Product, error) {
	if category == "" {
		return s.repo.GetAll()
	}
	return s.repo.GetByCategory(category)
}

// GetProductByKey retrieves a single product by its unique key.
func (s *CatalogService) GetProductByKey(key string) (*models.Product, error) {
	product, err := s.repo.GetByKey(key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, key)
		}
		return nil, &PersistenceError{Op: "load product", Err: err}
	}
	return product, nil
}

// GetProductByID retrieves a single product by its numeric ID.
func (s *CatalogService) GetProductByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
		}
		return nil, &PersistenceError{Op: "load product", Err: err}
	}
	return product, nil
}

// Categories returns the distinct product categories.
func (s *CatalogService) Categories() ([]string, error) {
	return s.repo.Categories()
}

// Seed populates the catalog with the store's starting assortment if it is
// empty. Repeated calls are no-ops, so boot can always run it.
func (s *CatalogService) Seed() error {
	count, err := s.repo.Count()
	if err != nil {
		return fmt.Errorf("failed to check catalog size before seeding: %w", err)
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{ProductKey: "oranges", Name: "Oranges", Price: decimal.NewFromInt(80), Category: "Fruits", ImagePath: "images/oranges.jpg"},
		{ProductKey: "grapes", Name: "Grapes", Price: decimal.NewFromInt(90), Category: "Fruits", ImagePath: "images/grapes.jpg"},
		{ProductKey: "poha", Name: "Poha", Price: decimal.NewFromInt(35), Category: "Grains", ImagePath: "images/poha.jpg"},
		{ProductKey: "bread", Name: "Whole Wheat Bread", Price: decimal.NewFromInt(40), Category: "Bakery", ImagePath: "images/bread.jpg"},
		{ProductKey: "milk", Name: "Organic Milk", Price: decimal.NewFromInt(60), Category: "Dairy", ImagePath: "images/milk.jpg"},
		{ProductKey: "eggs", Name: "Eggs (12 pcs)", Price: decimal.NewFromInt(70), Category: "Dairy", ImagePath: "images/eggs.jpg"},
		{ProductKey: "rice", Name: "Basmati Rice (1kg)", Price: decimal.NewFromInt(120), Category: "Grains", ImagePath: "images/rice.jpg"},
		{ProductKey: "toor_dal", Name: "Toor Dal (1kg)", Price: decimal.NewFromInt(100), Category: "Grains", ImagePath: "images/toor_dal.jpg"},
		{ProductKey: "tomatoes", Name: "Tomatoes (1kg)", Price: decimal.NewFromInt(30), Category: "Vegetables", ImagePath: "images/tomatoes.jpg"},
		{ProductKey: "onions", Name: "Onions (1kg)", Price: decimal.NewFromInt(25), Category: "Vegetables", ImagePath: "images/onions.jpg"},
	}

	for i := range products {
		products[i].StockQuantity = 100
		if err := s.repo.Create(&products[i]); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", products[i].ProductKey, err)
		}
		log.Printf("Seeded product: %s (key: %s)", products[i].Name, products[i].ProductKey)
	}
	return nil
}

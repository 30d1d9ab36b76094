package repositories

import (
	"fmt"
	"sync"

	"zesto/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It backs the unit tests and the no-database boot path.
type MockProductRepository struct {
	products map[string]models.Product // keyed by product key
	nextID   uint
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
		nextID:   1,
	}
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByCategory returns all products in the given category.
func (r *MockProductRepository) GetByCategory(category string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0)
	for _, p := range r.products {
		if p.Category == category {
			productList = append(productList, p)
		}
	}
	return productList, nil
}

// GetByKey returns a product by its unique product key.
func (r *MockProductRepository) GetByKey(key string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[key]
	if !ok {
		return nil, fmt.Errorf("product with key %s: %w", key, ErrNotFound)
	}
	return &product, nil
}

// GetByID returns a product by its numeric ID.
func (r *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
}

// Categories returns the distinct product categories.
func (r *MockProductRepository) Categories() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

// Create adds a new product. Duplicate product keys are rejected, matching
// the unique index the real schema carries.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ProductKey]; exists {
		return fmt.Errorf("product with key %s already exists", product.ProductKey)
	}
	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
	}
	r.products[product.ProductKey] = *product
	return nil
}

// Count returns the number of products.
func (r *MockProductRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

// Delete removes a product by its key. Used by tests that simulate a
// product vanishing from the catalog between add-to-cart and checkout.
func (r *MockProductRepository) Delete(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[key]; !ok {
		return fmt.Errorf("product with key %s: %w", key, ErrNotFound)
	}
	delete(r.products, key)
	return nil
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog.
type Product struct {
	ID            uint            `json:"product_id" gorm:"column:product_id;primaryKey"`
	ProductKey    string          `json:"product_key" gorm:"uniqueIndex;type:varchar(50);not null" validate:"required,min=1,max=50"`
	Name          string          `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=1,max=100"`
	Price         decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null" validate:"required"`
	Category      string          `json:"category" gorm:"type:varchar(50);not null" validate:"required,max=50"`
	ImagePath     string          `json:"image_path" gorm:"type:varchar(255);not null"`
	StockQuantity int             `json:"stock_quantity" gorm:"default:100" validate:"gte=0"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName overrides the GORM table name to match the storefront schema.
func (Product) TableName() string {
	return "products"
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusPending is the status every order is created with. There is
// no status-update flow in this service; downstream consumers own the
// rest of the lifecycle.
const OrderStatusPending = "pending"

// OrderItem represents a single line within a placed order. Items are
// created only as part of the checkout transaction and never mutated
// independently.
type OrderItem struct {
	ID           uint            `json:"order_item_id" gorm:"column:order_item_id;primaryKey"`
	OrderID      uint            `json:"order_id" gorm:"not null;index"`
	ProductID    uint            `json:"product_id" gorm:"not null"`
	Quantity     int             `json:"quantity" gorm:"not null"`
	PricePerUnit decimal.Decimal `json:"price_per_unit" gorm:"type:numeric(10,2);not null"` // Snapshot taken when the item entered the cart
}

// TableName overrides the GORM table name to match the storefront schema.
func (OrderItem) TableName() string {
	return "order_items"
}

// Order represents a customer order. Invariant at creation time:
// TotalAmount equals the sum of Quantity * PricePerUnit over Items.
type Order struct {
	ID              uint            `json:"order_id" gorm:"column:order_id;primaryKey"`
	UserID          uint            `json:"user_id" gorm:"not null;index"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:numeric(10,2);not null"`
	ShippingAddress string          `json:"shipping_address" gorm:"type:text;not null"`
	ContactNumber   string          `json:"contact_number" gorm:"type:varchar(20);not null"`
	PaymentMethod   string          `json:"payment_method" gorm:"type:varchar(50);not null"`
	Status          string          `json:"status" gorm:"type:varchar(20);default:'pending'"`
	CreatedAt       time.Time       `json:"created_at"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
}

// TableName overrides the GORM table name to match the storefront schema.
func (Order) TableName() string {
	return "orders"
}

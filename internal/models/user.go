package models

import "time"

// User represents a registered customer of the store.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(50);not null" validate:"required,min=3,max=50"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"` // Never serialized
	Address      string    `json:"address" gorm:"type:varchar(255);default:''"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName overrides the GORM table name to match the storefront schema.
func (User) TableName() string {
	return "users"
}

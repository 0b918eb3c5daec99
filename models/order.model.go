package models

import "gorm.io/gorm"

// Order status enum values
const (
	OrderStatusPlaced    = "PLACED"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// Order is a checkout snapshot of a user's cart
type Order struct {
	gorm.Model
	UserID    uint    `json:"user_id" gorm:"index;not null"`
	Total     float64 `json:"total" gorm:"default:0"`
	Status    string  `json:"status" gorm:"default:'PLACED'"` // PLACED, COMPLETED, CANCELLED
	IsDeleted bool    `gorm:"default:false"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// OrderItem snapshots a cart line at checkout time
type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"order_id" gorm:"index;not null"`
	BookID    uint    `json:"book_id" gorm:"index;not null"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity" gorm:"default:1"`
	UnitPrice float64 `json:"unit_price" gorm:"default:0"`
	IsDeleted bool    `gorm:"default:false"`
}

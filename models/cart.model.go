package models

import "gorm.io/gorm"

// CartItem is a book in a user's cart. One row per (user, book).
type CartItem struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"index;not null"`
	BookID    uint `json:"book_id" gorm:"index;not null"`
	Quantity  int  `json:"quantity" gorm:"default:1"`
	IsDeleted bool `gorm:"default:false"`

	Book Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

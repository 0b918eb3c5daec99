package models

import "gorm.io/gorm"

// Book is a storefront item sold through an Amazon referral link
type Book struct {
	gorm.Model
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `gorm:"type:text" json:"description"`
	CoverURL    string  `json:"cover_url"`
	ASIN        string  `json:"asin" gorm:"size:20;index"`
	Price       float64 `json:"price" gorm:"default:0"` // display price, charged by Amazon
	IsPublished bool    `json:"is_published" gorm:"default:false"`
	IsDeleted   bool    `gorm:"default:false"`
}

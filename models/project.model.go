package models

import "gorm.io/gorm"

// Project is a ministry project shown on the site
type Project struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `json:"image_url"`
	VideoURL    string `json:"video_url"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	CreatedBy   uint   `json:"created_by" gorm:"index"`
	IsDeleted   bool   `gorm:"default:false"`
}

package training

import "gorm.io/gorm"

// Section is the leaf content unit within a chapter
type Section struct {
	gorm.Model
	ChapterID  uint   `json:"chapter_id" gorm:"index;not null"`
	Title      string `json:"title"`
	Content    string `gorm:"type:text" json:"content"`
	VideoURL   string `json:"video_url"`
	FileURL    string `json:"file_url"`
	OrderIndex int    `json:"order_index" gorm:"default:0"` // position within chapter
	IsDeleted  bool   `gorm:"default:false"`
}

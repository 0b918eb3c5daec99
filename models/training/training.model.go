package training

import "gorm.io/gorm"

// Training type enum values
const (
	TypeVideo    = "VIDEO"
	TypeDocument = "DOCUMENT"
	TypeQuiz     = "QUIZ"
)

// Training represents a course-like content unit composed of chapters
type Training struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Type        string `json:"type" gorm:"default:'VIDEO'"` // VIDEO, DOCUMENT, QUIZ
	MediaURL    string `json:"media_url"`
	CreatedBy   uint   `json:"created_by" gorm:"index"` // admin account that owns it
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}

package training

import "gorm.io/gorm"

// Chapter is an ordered grouping of sections within a training
type Chapter struct {
	gorm.Model
	TrainingID uint   `json:"training_id" gorm:"index;not null"`
	Title      string `json:"title"`
	OrderIndex int    `json:"order_index" gorm:"default:0"` // position within training
	IsDeleted  bool   `gorm:"default:false"`
}

package training

import "gorm.io/gorm"

// Progress tracks a user's enrollment in a training with completion state.
// At most one row exists per (user, training) pair, enforced by
// read-before-write in the controllers.
type Progress struct {
	gorm.Model
	UserID     uint `json:"user_id" gorm:"index;not null"`
	TrainingID uint `json:"training_id" gorm:"index;not null"`
	Completed  bool `json:"completed" gorm:"default:false"`
	Score      int  `json:"score" gorm:"default:0"` // 0-100
	IsDeleted  bool `gorm:"default:false"`
}

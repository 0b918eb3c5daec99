package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscriber is a newsletter signup. Verify/unsubscribe links carry the
// opaque tokens stored here.
type Subscriber struct {
	gorm.Model
	Email            string     `gorm:"unique;not null" json:"email"`
	Name             string     `json:"name"`
	IsVerified       bool       `json:"is_verified" gorm:"default:false"`
	VerifyToken      string     `gorm:"size:40;index" json:"-"`
	UnsubscribeToken string     `gorm:"size:40;index" json:"-"`
	VerifiedAt       *time.Time `json:"verified_at"`
	IsDeleted        bool       `gorm:"default:false"`
}

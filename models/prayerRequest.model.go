package models

import "gorm.io/gorm"

// PrayerRequest status enum values
const (
	PrayerStatusOpen     = "OPEN"
	PrayerStatusPraying  = "PRAYING"
	PrayerStatusAnswered = "ANSWERED"
	PrayerStatusClosed   = "CLOSED"
)

// PrayerRequest is a request submitted from the site. UserID is zero for
// anonymous submissions.
type PrayerRequest struct {
	gorm.Model
	UserID      uint   `json:"user_id" gorm:"index"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `gorm:"type:text" json:"message"`
	Status      string `json:"status" gorm:"default:'OPEN'"` // OPEN, PRAYING, ANSWERED, CLOSED
	IsAnonymous bool   `json:"is_anonymous" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}

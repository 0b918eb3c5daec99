package models

import (
	"time"

	"gorm.io/gorm"
)

// Event is a published prayer event users can register for
type Event struct {
	gorm.Model
	Title       string    `json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsPublished bool      `json:"is_published" gorm:"default:false"`
	CreatedBy   uint      `json:"created_by" gorm:"index"`
	IsDeleted   bool      `gorm:"default:false"`
}

// EventRegistration records an attendee for an event. UserID is zero for
// guest registrations.
type EventRegistration struct {
	gorm.Model
	EventID    uint       `json:"event_id" gorm:"index;not null"`
	UserID     uint       `json:"user_id" gorm:"index"`
	Name       string     `json:"name"`
	Email      string     `json:"email" gorm:"index"`
	Phone      string     `json:"phone"`
	ReminderAt *time.Time `json:"-"` // set once the reminder email went out
	IsDeleted  bool       `gorm:"default:false"`
}

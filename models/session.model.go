package models

import (
	"time"

	"gorm.io/gorm"
)

// Session is the persistent backing row for the database session store.
// Only used when SESSION_STORE=db; the memory store keeps no rows.
type Session struct {
	gorm.Model
	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

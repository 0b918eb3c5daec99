package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage string `gorm:"default:''" json:"profile_image"`
	Name         string `gorm:"default:''" json:"name"`
	Email        string `gorm:"unique;not null" json:"email"`
	Role         string `gorm:"default:'USER'" json:"role"` // USER, ADMIN
	Password     string `gorm:"not null" json:"-"`

	// Social login linkage. Empty provider means password account.
	Provider   string `gorm:"default:''" json:"provider"` // GOOGLE, FACEBOOK
	ProviderID string `gorm:"default:''" json:"-"`

	// TOTP second factor
	TOTPEnabled bool           `gorm:"default:false" json:"totp_enabled"`
	TOTPSecret  string         `gorm:"default:''" json:"-"`
	BackupCodes datatypes.JSON `json:"-"` // bcrypt hashes of single-use codes

	IsEmailVerified     bool       `gorm:"default:false" json:"is_email_verified"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`
	LastLogin           time.Time  `gorm:"default:NULL" json:"last_login"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LastFailedLogin     *time.Time `json:"-"`
	IsBlocked           bool       `gorm:"default:false" json:"-"`
	BlockedUntil        *time.Time `json:"-"`
	IsDeleted           bool       `gorm:"default:false" json:"-"`
}

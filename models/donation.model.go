package models

import "gorm.io/gorm"

// Donation provider/status enum values
const (
	DonationProviderStripe = "STRIPE"
	DonationProviderPayPal = "PAYPAL"

	DonationStatusPending   = "PENDING"
	DonationStatusCompleted = "COMPLETED"
	DonationStatusFailed    = "FAILED"
)

// Donation records a gift made through Stripe or PayPal. Amount is kept in
// the smallest currency unit (cents) the way Stripe reports it.
type Donation struct {
	gorm.Model
	UserID     uint   `json:"user_id" gorm:"index"` // zero for guest donations
	Name       string `json:"name"`
	Email      string `json:"email"`
	Amount     int64  `json:"amount" gorm:"not null"`
	Currency   string `json:"currency" gorm:"size:3;default:'usd'"`
	Provider   string `json:"provider"`                 // STRIPE, PAYPAL
	ProviderID string `json:"provider_id" gorm:"index"` // PaymentIntent / PayPal order id
	Reference  string `json:"reference" gorm:"size:40;uniqueIndex"`
	Status     string `json:"status" gorm:"default:'PENDING'"` // PENDING, COMPLETED, FAILED
	Note       string `gorm:"type:text" json:"note"`
	IsDeleted  bool   `gorm:"default:false"`
}

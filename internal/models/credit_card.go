package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CardStatusActive   = "active"
	CardStatusDisabled = "disabled"
)

// CreditCard is a linked card. Only the processor token, a keyed
// fingerprint and the last four digits are kept; never the full number.
type CreditCard struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	PublicID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"public_id"`
	UserID         uint      `gorm:"not null;index;uniqueIndex:idx_user_fingerprint" json:"-"`
	Token          string    `gorm:"not null" json:"-"`
	Fingerprint    string    `gorm:"size:64;not null;uniqueIndex:idx_user_fingerprint" json:"-"`
	CardType       string    `gorm:"size:32;not null" json:"card_type"`
	CardholderName string    `gorm:"size:128" json:"cardholder_name,omitempty"`
	LastFour       string    `gorm:"size:4;not null" json:"last_four"`
	ExpiryMonth    int       `gorm:"not null" json:"expiry_month"`
	ExpiryYear     int       `gorm:"not null" json:"expiry_year"`
	Expiration     string    `gorm:"size:16;not null" json:"expiration"`
	IsDefault      bool      `gorm:"default:false" json:"is_default"`
	Status         string    `gorm:"size:16;default:'active'" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (c *CreditCard) BeforeCreate(tx *gorm.DB) error {
	if c.PublicID == uuid.Nil {
		c.PublicID = uuid.New()
	}
	if c.Status == "" {
		c.Status = CardStatusActive
	}
	return nil
}

package cards

import (
	"context"
	"time"

	"cardcheck/internal/creditcard"
	"cardcheck/internal/models"

	"github.com/google/uuid"
)

// CheckResult is the advisory outcome of checking one card number.
type CheckResult struct {
	Valid    bool                `json:"valid" yaml:"valid"`
	CardType creditcard.CardType `json:"card_type" yaml:"card_type"`
	LastFour int                 `json:"last_four" yaml:"last_four"`
	Masked   string              `json:"masked" yaml:"masked"`
}

// CreateCardInput represents the input for linking a new card
type CreateCardInput struct {
	CardNumber     string `json:"card_number" validate:"required,numeric,luhn,cardnetwork"`
	CardholderName string `json:"cardholder_name" validate:"omitempty,max=128"`
	CVN            string `json:"cvn" validate:"omitempty,numeric,min=3,max=4"`
	ExpiryMonth    int    `json:"expiry_month" validate:"required,min=1,max=12"`
	ExpiryYear     int    `json:"expiry_year" validate:"required"`
}

// TokenizedCard represents a tokenized credit card
type TokenizedCard struct {
	Token    string
	CardType creditcard.CardType
	LastFour string
	IssuedBy string
}

// CardSummary is the public view of a linked card.
type CardSummary struct {
	ID             uint      `json:"id"`
	PublicID       uuid.UUID `json:"public_id"`
	CardType       string    `json:"card_type"`
	CardholderName string    `json:"cardholder_name,omitempty"`
	LastFour       string    `json:"last_four"`
	ExpiryMonth    int       `json:"expiry_month"`
	ExpiryYear     int       `json:"expiry_year"`
	Expiration     string    `json:"expiration"`
	IsDefault      bool      `json:"is_default"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewCardSummary(c *models.CreditCard) CardSummary {
	return CardSummary{
		ID:             c.ID,
		PublicID:       c.PublicID,
		CardType:       c.CardType,
		CardholderName: c.CardholderName,
		LastFour:       c.LastFour,
		ExpiryMonth:    c.ExpiryMonth,
		ExpiryYear:     c.ExpiryYear,
		Expiration:     c.Expiration,
		IsDefault:      c.IsDefault,
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
	}
}

// Config holds the service settings taken from config.CardsConfig.
type Config struct {
	FingerprintKey string
	DateFormat     string
	BatchMaxSize   int
	BatchWorkers   int
}

// Service defines the interface for card operations
type Service interface {
	Check(number string) CheckResult
	CheckBatch(ctx context.Context, numbers []string) ([]CheckResult, error)
	LinkCard(ctx context.Context, userID uint, input CreateCardInput) (*CardSummary, error)
	GetUserCards(ctx context.Context, userID uint) ([]CardSummary, error)
	GetCard(ctx context.Context, userID uint, publicID uuid.UUID) (*CardSummary, error)
	SetDefaultCard(ctx context.Context, userID, cardID uint) error
	SetCardStatus(ctx context.Context, userID, cardID uint, status string) error
	DeleteCard(ctx context.Context, userID, cardID uint) error
}

// Cache is the subset of cache.CacheService the service needs.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

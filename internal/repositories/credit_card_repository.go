package repositories

import (
	"context"
	"errors"

	"cardcheck/internal/models"

	"github.com/google/uuid"
)

var (
	ErrCardNotFound  = errors.New("credit card not found")
	ErrDuplicateCard = errors.New("credit card already exists")
)

type CreditCardRepository interface {
	// Core operations
	GetByID(ctx context.Context, cardID uint) (*models.CreditCard, error)
	GetByPublicID(ctx context.Context, publicID uuid.UUID) (*models.CreditCard, error)
	Create(ctx context.Context, card *models.CreditCard) error
	Delete(ctx context.Context, cardID uint) error

	// Query operations
	GetByUserID(ctx context.Context, userID uint) ([]*models.CreditCard, error)
	GetByFingerprint(ctx context.Context, userID uint, fingerprint string) (*models.CreditCard, error)
	GetDefaultCard(ctx context.Context, userID uint) (*models.CreditCard, error)
	CountByUserID(ctx context.Context, userID uint) (int64, error)

	// Status operations
	UpdateStatus(ctx context.Context, cardID uint, status string) error
	SetDefault(ctx context.Context, cardID uint) error
}

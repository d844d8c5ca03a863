package repositories

import (
	"context"
	"errors"
	"fmt"

	"cardcheck/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type creditCardRepository struct {
	db *gorm.DB
}

func NewCreditCardRepository(db *gorm.DB) CreditCardRepository {
	return &creditCardRepository{
		db: db,
	}
}

func (r *creditCardRepository) GetByID(ctx context.Context, cardID uint) (*models.CreditCard, error) {
	var card models.CreditCard
	if err := r.db.WithContext(ctx).First(&card, cardID).Error; err != nil {
		return nil, notFound(err, "failed to get card")
	}
	return &card, nil
}

func (r *creditCardRepository) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*models.CreditCard, error) {
	var card models.CreditCard
	if err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&card).Error; err != nil {
		return nil, notFound(err, "failed to get card")
	}
	return &card, nil
}

func (r *creditCardRepository) Create(ctx context.Context, card *models.CreditCard) error {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCard
		}
		return fmt.Errorf("failed to create card: %w", err)
	}
	return nil
}

func (r *creditCardRepository) Delete(ctx context.Context, cardID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CreditCard{}, cardID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

func (r *creditCardRepository) GetByUserID(ctx context.Context, userID uint) ([]*models.CreditCard, error) {
	var cards []*models.CreditCard
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at ASC").
		Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to get user cards: %w", err)
	}
	return cards, nil
}

func (r *creditCardRepository) GetByFingerprint(ctx context.Context, userID uint, fingerprint string) (*models.CreditCard, error) {
	var card models.CreditCard
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND fingerprint = ?", userID, fingerprint).
		First(&card).Error; err != nil {
		return nil, notFound(err, "failed to get card by fingerprint")
	}
	return &card, nil
}

func (r *creditCardRepository) GetDefaultCard(ctx context.Context, userID uint) (*models.CreditCard, error) {
	var card models.CreditCard
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_default = ?", userID, true).
		First(&card).Error; err != nil {
		return nil, notFound(err, "failed to get default card")
	}
	return &card, nil
}

func (r *creditCardRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CreditCard{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count user cards: %w", err)
	}
	return count, nil
}

func (r *creditCardRepository) UpdateStatus(ctx context.Context, cardID uint, status string) error {
	result := r.db.WithContext(ctx).Model(&models.CreditCard{}).Where("id = ?", cardID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// SetDefault makes cardID the only default card of its owner.
func (r *creditCardRepository) SetDefault(ctx context.Context, cardID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var card models.CreditCard
		if err := tx.First(&card, cardID).Error; err != nil {
			return notFound(err, "failed to get card")
		}

		if err := tx.Model(&models.CreditCard{}).
			Where("user_id = ? AND id <> ?", card.UserID, cardID).
			Update("is_default", false).Error; err != nil {
			return err
		}

		return tx.Model(&models.CreditCard{}).
			Where("id = ?", cardID).
			Update("is_default", true).Error
	})
}

func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCardNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}

package cards

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cardcheck/internal/creditcard"
	apperrors "cardcheck/internal/errors"
	"cardcheck/internal/logger"
	"cardcheck/internal/models"
	"cardcheck/internal/repositories"
	"cardcheck/internal/utils"
	cachekeys "cardcheck/internal/utils/cache"
	"cardcheck/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// service implements the Service interface
type service struct {
	repo      repositories.CreditCardRepository
	cache     Cache
	tokenizer Tokenizer
	config    Config
	log       *zap.Logger
	now       func() time.Time
}

// NewService wires a card service. A nil cache disables caching and a nil
// logger discards logs.
func NewService(repo repositories.CreditCardRepository, cache Cache, tokenizer Tokenizer, config Config, log *zap.Logger) Service {
	if cache == nil {
		cache = NoopCache{}
	}
	if log == nil {
		log = logger.Nop()
	}
	if config.DateFormat == "" {
		config.DateFormat = creditcard.DefaultDateFormat
	}
	if config.BatchMaxSize < 1 {
		config.BatchMaxSize = 100
	}
	if config.BatchWorkers < 1 {
		config.BatchWorkers = 1
	}
	return &service{
		repo:      repo,
		cache:     cache,
		tokenizer: tokenizer,
		config:    config,
		log:       log,
		now:       time.Now,
	}
}

// Check normalizes separators out of number and reports whether it passes
// the Luhn check and which network it belongs to.
func (s *service) Check(number string) CheckResult {
	n := creditcard.Normalize(number)
	return CheckResult{
		Valid:    creditcard.IsValid(n),
		CardType: creditcard.DetermineCardType(n),
		LastFour: creditcard.LastFourDigits(n),
		Masked:   creditcard.MaskNumber(n),
	}
}

// CheckBatch checks numbers concurrently. Results keep the input order.
func (s *service) CheckBatch(ctx context.Context, numbers []string) ([]CheckResult, error) {
	if len(numbers) > s.config.BatchMaxSize {
		return nil, fmt.Errorf("%w: got %d, limit %d", apperrors.ErrBatchTooLarge, len(numbers), s.config.BatchMaxSize)
	}

	results := make([]CheckResult, len(numbers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.BatchWorkers)
	for i, number := range numbers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.Check(number)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Debug("batch checked", zap.Int("count", len(numbers)))
	return results, nil
}

func (s *service) LinkCard(ctx context.Context, userID uint, input CreateCardInput) (*CardSummary, error) {
	input.CardNumber = creditcard.Normalize(input.CardNumber)
	if err := s.validateCardInput(input); err != nil {
		return nil, err
	}
	masked := creditcard.MaskNumber(input.CardNumber)

	fingerprint, err := utils.Fingerprint(s.config.FingerprintKey, input.CardNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint card: %w", err)
	}

	existing, err := s.repo.GetByFingerprint(ctx, userID, fingerprint)
	switch {
	case err == nil && existing != nil:
		return nil, apperrors.ErrDuplicateCard
	case err != nil && !errors.Is(err, repositories.ErrCardNotFound):
		return nil, fmt.Errorf("failed to check existing cards: %w", err)
	}

	tokenized, err := s.tokenizer.TokenizeCard(ctx, input)
	if err != nil {
		s.log.Warn("tokenization failed", logger.CardNumber(masked), zap.Error(err))
		return nil, err
	}

	count, err := s.repo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	cardType := creditcard.DetermineCardType(input.CardNumber)
	if tokenized.CardType != cardType {
		s.log.Info("processor network differs from prefix rules",
			logger.CardNumber(masked),
			zap.Stringer("local", cardType),
			zap.Stringer("processor", tokenized.CardType))
	}

	card := &models.CreditCard{
		UserID:         userID,
		Token:          tokenized.Token,
		Fingerprint:    fingerprint,
		CardType:       cardType.String(),
		CardholderName: input.CardholderName,
		LastFour:       fmt.Sprintf("%04d", creditcard.LastFourDigits(input.CardNumber)),
		ExpiryMonth:    input.ExpiryMonth,
		ExpiryYear:     input.ExpiryYear,
		Expiration:     creditcard.FormatExpiration(creditcard.ExpirationDate(input.ExpiryMonth, input.ExpiryYear), s.config.DateFormat),
		IsDefault:      count == 0,
		Status:         models.CardStatusActive,
	}

	if err := s.repo.Create(ctx, card); err != nil {
		if errors.Is(err, repositories.ErrDuplicateCard) {
			return nil, apperrors.ErrDuplicateCard
		}
		return nil, fmt.Errorf("failed to save card: %w", err)
	}

	s.invalidate(ctx, userID)
	s.log.Info("card linked",
		zap.Uint("user_id", userID),
		zap.Stringer("card_type", cardType),
		logger.CardNumber(masked))

	summary := NewCardSummary(card)
	return &summary, nil
}

// GetUserCards returns the user's cards, default first.
func (s *service) GetUserCards(ctx context.Context, userID uint) ([]CardSummary, error) {
	key := cachekeys.UserCardsKey(userID)

	var cached []CardSummary
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn("card cache read failed", zap.String("key", key), zap.Error(err))
	}
	if found {
		return cached, nil
	}

	cards, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]CardSummary, 0, len(cards))
	for _, c := range cards {
		summaries = append(summaries, NewCardSummary(c))
	}

	if err := s.cache.Set(ctx, key, summaries); err != nil {
		s.log.Warn("card cache write failed", zap.String("key", key), zap.Error(err))
	}
	return summaries, nil
}

func (s *service) GetCard(ctx context.Context, userID uint, publicID uuid.UUID) (*CardSummary, error) {
	card, err := s.repo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	// Another user's card is reported as missing.
	if card.UserID != userID {
		return nil, apperrors.ErrCardNotFound
	}
	summary := NewCardSummary(card)
	return &summary, nil
}

func (s *service) SetDefaultCard(ctx context.Context, userID, cardID uint) error {
	card, err := s.ownedCard(ctx, userID, cardID)
	if err != nil {
		return err
	}
	if card.IsDefault {
		return nil
	}

	if err := s.repo.SetDefault(ctx, cardID); err != nil {
		return mapRepoError(err)
	}
	s.invalidate(ctx, userID)
	return nil
}

// SetCardStatus enables or disables a card. Disabled cards stay listed.
func (s *service) SetCardStatus(ctx context.Context, userID, cardID uint, status string) error {
	if status != models.CardStatusActive && status != models.CardStatusDisabled {
		return apperrors.ErrInvalidCardStatus
	}
	card, err := s.ownedCard(ctx, userID, cardID)
	if err != nil {
		return err
	}
	if card.Status == status {
		return nil
	}

	if err := s.repo.UpdateStatus(ctx, cardID, status); err != nil {
		return mapRepoError(err)
	}
	s.invalidate(ctx, userID)
	s.log.Info("card status changed", zap.Uint("card_id", cardID), zap.String("status", status))
	return nil
}

// DeleteCard removes a card. When the user is left without a default, the
// first remaining card takes over.
func (s *service) DeleteCard(ctx context.Context, userID, cardID uint) error {
	if _, err := s.ownedCard(ctx, userID, cardID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, cardID); err != nil {
		return mapRepoError(err)
	}
	defer s.invalidate(ctx, userID)

	_, err := s.repo.GetDefaultCard(ctx, userID)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, repositories.ErrCardNotFound):
		return fmt.Errorf("failed to get default card: %w", err)
	}

	remaining, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		return nil
	}
	if err := s.repo.SetDefault(ctx, remaining[0].ID); err != nil {
		return mapRepoError(err)
	}
	return nil
}

func (s *service) ownedCard(ctx context.Context, userID, cardID uint) (*models.CreditCard, error) {
	card, err := s.repo.GetByID(ctx, cardID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if card.UserID != userID {
		return nil, apperrors.ErrCardNotOwned
	}
	return card, nil
}

func (s *service) invalidate(ctx context.Context, userID uint) {
	key := cachekeys.UserCardsKey(userID)
	if err := s.cache.Delete(ctx, key); err != nil {
		s.log.Warn("card cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *service) validateCardInput(input CreateCardInput) error {
	fields := validation.ValidateStruct(input)
	if fields == nil {
		fields = map[string]string{}
	}

	v := &validation.Validator{Errors: fields}
	v.CardNumber("card_number", input.CardNumber)
	v.Expiry("expiry_month", "expiry_year", input.ExpiryMonth, input.ExpiryYear, s.now())
	v.CVN("cvn", input.CVN, creditcard.DetermineCardType(input.CardNumber))
	v.MaxLength("cardholder_name", input.CardholderName, validation.MaxCardholderNameLength)

	if !v.Valid() {
		return &ValidationError{Fields: v.Errors}
	}
	return nil
}

func mapRepoError(err error) error {
	if errors.Is(err, repositories.ErrCardNotFound) {
		return apperrors.ErrCardNotFound
	}
	return err
}

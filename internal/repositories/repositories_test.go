package repositories

import (
	"context"
	"errors"
	"os"
	"testing"

	"cardcheck/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestCreateSchemaSQL(t *testing.T) {
	assert.Equal(t, `CREATE SCHEMA IF NOT EXISTS "public"`, createSchemaSQL("public"))
	assert.Equal(t, `CREATE SCHEMA IF NOT EXISTS "card""s"`, createSchemaSQL(`card"s`))
}

func TestNotFound(t *testing.T) {
	assert.ErrorIs(t, notFound(gorm.ErrRecordNotFound, "x"), ErrCardNotFound)

	boom := errors.New("boom")
	err := notFound(boom, "failed to get card")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "failed to get card: boom", err.Error())
}

// The repository tests below need a disposable database, for example
// TEST_DATABASE_DSN="host=localhost user=postgres password=postgres dbname=cardcheck_test sslmode=disable".
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrator().DropTable(&models.CreditCard{}))
	require.NoError(t, Migrate(db))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestCreditCardRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewCreditCardRepository(db)
	ctx := context.Background()

	first := &models.CreditCard{UserID: 1, Token: "tok_visa", Fingerprint: "fp-1", CardType: "Visa",
		LastFour: "5174", ExpiryMonth: 12, ExpiryYear: 2030, Expiration: "1230", IsDefault: true}
	second := &models.CreditCard{UserID: 1, Token: "tok_mastercard", Fingerprint: "fp-2", CardType: "Mastercard",
		LastFour: "9849", ExpiryMonth: 1, ExpiryYear: 2031, Expiration: "0131"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	dup := &models.CreditCard{UserID: 1, Token: "tok_visa", Fingerprint: "fp-1", CardType: "Visa",
		LastFour: "5174", ExpiryMonth: 12, ExpiryYear: 2030, Expiration: "1230"}
	assert.ErrorIs(t, repo.Create(ctx, dup), ErrDuplicateCard)

	byPublic, err := repo.GetByPublicID(ctx, second.PublicID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, byPublic.ID)

	byFingerprint, err := repo.GetByFingerprint(ctx, 1, "fp-2")
	require.NoError(t, err)
	assert.Equal(t, second.ID, byFingerprint.ID)

	count, err := repo.CountByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repo.SetDefault(ctx, second.ID))
	def, err := repo.GetDefaultCard(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, second.ID, def.ID)

	cards, err := repo.GetByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, second.ID, cards[0].ID)

	require.NoError(t, repo.UpdateStatus(ctx, first.ID, models.CardStatusDisabled))
	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CardStatusDisabled, got.Status)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), ErrCardNotFound)
	_, err = repo.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditCard_BeforeCreate(t *testing.T) {
	card := &CreditCard{UserID: 1}
	require.NoError(t, card.BeforeCreate(nil))

	assert.NotEqual(t, uuid.Nil, card.PublicID)
	assert.Equal(t, CardStatusActive, card.Status)

	id := uuid.New()
	kept := &CreditCard{PublicID: id, Status: CardStatusDisabled}
	require.NoError(t, kept.BeforeCreate(nil))
	assert.Equal(t, id, kept.PublicID)
	assert.Equal(t, CardStatusDisabled, kept.Status)
}

func TestUserClaims_HasPermission(t *testing.T) {
	claims := &UserClaims{Permissions: GetDefaultPermissions("merchant")}

	assert.True(t, claims.HasPermission(PermissionCardCheck))
	assert.False(t, claims.HasPermission(PermissionCardWrite))
	assert.Empty(t, GetDefaultPermissions("guest"))
}

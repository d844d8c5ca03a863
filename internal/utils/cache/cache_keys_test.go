package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKey(t *testing.T) {
	assert.Equal(t, "card:user:42", UserCardsKey(42))
	assert.Equal(t, "card:user:7", GenerateKey(EntityCard, KeyUser, 7))
}

package cards

import (
	"context"
	"errors"
	"fmt"

	"cardcheck/internal/creditcard"
	"cardcheck/internal/utils"
)

var ErrTokenizationFailed = errors.New("card tokenization failed")

// Tokenizer exchanges a card number for a processor token.
type Tokenizer interface {
	TokenizeCard(ctx context.Context, card CreateCardInput) (*TokenizedCard, error)
}

// TestTokenizer tokenizes locally without a processor. Well-known processor
// test numbers map to their documented tokens; any other Luhn-valid number
// gets a stable tok_test_ token derived from its fingerprint.
type TestTokenizer struct {
	testCards map[string]string
}

func NewTestTokenizer() *TestTokenizer {
	return &TestTokenizer{
		testCards: map[string]string{
			"4242424242424242": "tok_visa",
			"4000056655665556": "tok_visa_debit",
			"5555555555554444": "tok_mastercard",
			"378282246310005":  "tok_amex",
			"6011111111111117": "tok_discover",
			"36227206271667":   "tok_diners",
			"3566002020360505": "tok_jcb",
		},
	}
}

func (t *TestTokenizer) TokenizeCard(ctx context.Context, card CreateCardInput) (*TokenizedCard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !creditcard.IsValid(card.CardNumber) {
		return nil, fmt.Errorf("%w: invalid card number", ErrTokenizationFailed)
	}

	token, ok := t.testCards[card.CardNumber]
	if !ok {
		fp, err := utils.Fingerprint("test-tokenizer", card.CardNumber)
		if err != nil {
			return nil, err
		}
		token = "tok_test_" + fp[:24]
	}

	return &TokenizedCard{
		Token:    token,
		CardType: creditcard.DetermineCardType(card.CardNumber),
		LastFour: card.CardNumber[len(card.CardNumber)-4:],
		IssuedBy: "Test Bank",
	}, nil
}

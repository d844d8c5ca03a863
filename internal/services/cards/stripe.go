package cards

import (
	"context"
	"fmt"
	"strconv"

	"cardcheck/internal/creditcard"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/token"
)

// StripeTokenizer creates card tokens through the Stripe API.
type StripeTokenizer struct {
	client token.Client
}

// NewStripeTokenizer uses the default Stripe API backend.
func NewStripeTokenizer(secretKey string) *StripeTokenizer {
	return NewStripeTokenizerWithBackend(secretKey, stripe.GetBackend(stripe.APIBackend))
}

func NewStripeTokenizerWithBackend(secretKey string, backend stripe.Backend) *StripeTokenizer {
	return &StripeTokenizer{
		client: token.Client{B: backend, Key: secretKey},
	}
}

func (t *StripeTokenizer) TokenizeCard(ctx context.Context, card CreateCardInput) (*TokenizedCard, error) {
	params := &stripe.TokenParams{
		Card: &stripe.CardParams{
			Number:   stripe.String(card.CardNumber),
			ExpMonth: stripe.String(strconv.Itoa(card.ExpiryMonth)),
			ExpYear:  stripe.String(strconv.Itoa(card.ExpiryYear)),
		},
	}
	if card.CVN != "" {
		params.Card.CVC = stripe.String(card.CVN)
	}
	if card.CardholderName != "" {
		params.Card.Name = stripe.String(card.CardholderName)
	}
	params.Context = ctx

	tok, err := t.client.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenizationFailed, err)
	}

	result := &TokenizedCard{
		Token:    tok.ID,
		CardType: creditcard.DetermineCardType(card.CardNumber),
		IssuedBy: "Stripe",
	}
	if tok.Card != nil {
		result.LastFour = tok.Card.Last4
		if brand := brandCardType(tok.Card.Brand); brand != creditcard.Unknown {
			result.CardType = brand
		}
	}
	return result, nil
}

// brandCardType maps a Stripe brand onto CardType.
func brandCardType(brand stripe.CardBrand) creditcard.CardType {
	switch brand {
	case stripe.CardBrandVisa:
		return creditcard.Visa
	case stripe.CardBrandMasterCard:
		return creditcard.Mastercard
	case stripe.CardBrandAmex:
		return creditcard.AmericanExpress
	case stripe.CardBrandDiscover:
		return creditcard.Discover
	case stripe.CardBrandDinersClub:
		return creditcard.DinersClub
	case stripe.CardBrandJCB:
		return creditcard.Jcb
	}
	return creditcard.Unknown
}

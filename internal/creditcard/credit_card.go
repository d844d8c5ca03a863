package creditcard

import "time"

// CreditCard is a card as entered by a customer. Number is never serialized.
type CreditCard struct {
	Number         string    `json:"-" yaml:"-"`
	Name           string    `json:"name" yaml:"name"`
	CVN            string    `json:"cvn,omitempty" yaml:"cvn,omitempty"`
	ExpirationDate time.Time `json:"expiration_date" yaml:"expiration_date"`
}

func New(number string) *CreditCard {
	return &CreditCard{Number: number}
}

func (c *CreditCard) CardType() CardType {
	return DetermineCardType(c.Number)
}

func (c *CreditCard) IsValid() bool {
	return IsValid(c.Number)
}

// ValidateCardType reports whether the card's number classifies as want.
func (c *CreditCard) ValidateCardType(want CardType) bool {
	return ValidateCardType(c.Number, want)
}

func (c *CreditCard) LastFourDigits() int {
	return LastFourDigits(c.Number)
}

// ExpirationString formats ExpirationDate with format, "MMyy" when empty.
func (c *CreditCard) ExpirationString(format string) string {
	return FormatExpiration(c.ExpirationDate, format)
}

package validation

import (
	"fmt"
	"strings"
	"time"

	"cardcheck/internal/creditcard"
	"cardcheck/internal/utils"
)

// Validator collects field errors keyed by field name.
type Validator struct {
	Errors map[string]string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records message for field unless field already has one.
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
	}
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Required checks if a string is not blank
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "must not be empty")
}

// MaxLength checks if a string has at most n characters
func (v *Validator) MaxLength(field, value string, n int) {
	v.Check(len(value) <= n, field, fmt.Sprintf("must not be more than %d characters long", n))
}

// Range checks if a number is between min and max
func (v *Validator) Range(field string, value, min, max int) {
	v.Check(value >= min && value <= max, field, fmt.Sprintf("must be between %d and %d", min, max))
}

// CardNumber checks that number is a plain digit string of a supported
// length that passes the Luhn checksum and belongs to a recognised network.
func (v *Validator) CardNumber(field, number string) {
	switch {
	case strings.TrimSpace(number) == "":
		v.AddError(field, "must not be empty")
	case !utils.IsNumeric(number):
		v.AddError(field, MsgNotDigits)
	case !utils.IsDigits(number):
		v.AddError(field, "must not contain a sign or decimal point")
	case len(number) < creditcard.MinLength || len(number) > creditcard.MaxLength:
		v.AddError(field, fmt.Sprintf("must be between %d and %d digits", creditcard.MinLength, creditcard.MaxLength))
	case !creditcard.IsValid(number):
		v.AddError(field, MsgInvalidCardNumber)
	case !creditcard.DetermineCardType(number).IsNetwork():
		v.AddError(field, MsgUnsupportedNetwork)
	}
}

// Expiry checks an expiry month and four-digit year against now.
func (v *Validator) Expiry(monthField, yearField string, month, year int, now time.Time) {
	v.Range(monthField, month, 1, 12)
	v.Range(yearField, year, now.Year(), now.Year()+MaxExpiryYears)
	_, badMonth := v.Errors[monthField]
	_, badYear := v.Errors[yearField]
	if !badMonth && !badYear {
		v.Check(!creditcard.IsExpired(month, year, now), yearField, MsgCardExpired)
	}
}

// CVN checks the security code length for the card network. An empty code
// is allowed; processors decide whether one is needed.
func (v *Validator) CVN(field, cvn string, cardType creditcard.CardType) {
	if cvn == "" {
		return
	}
	want := CVNLength
	if cardType == creditcard.AmericanExpress {
		want = AmexCVNLength
	}
	v.Check(utils.IsDigits(cvn) && len(cvn) == want, field, fmt.Sprintf("must be %d digits", want))
}

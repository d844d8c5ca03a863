package cards

import (
	"sort"
	"strings"

	apperrors "cardcheck/internal/errors"
	"cardcheck/internal/validation"
)

// ValidationError carries per-field messages for a rejected CreateCardInput.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Unwrap maps the field errors onto the closest domain error so callers can
// use errors.Is with the codes in internal/errors.
func (e *ValidationError) Unwrap() error {
	switch {
	case e.Fields["card_number"] == validation.MsgUnsupportedNetwork:
		return apperrors.ErrUnsupportedCardType
	case e.Fields["card_number"] != "":
		return apperrors.ErrInvalidCardNumber
	case e.Fields["expiry_year"] == validation.MsgCardExpired:
		return apperrors.ErrCardExpired
	case e.Fields["expiry_month"] != "" || e.Fields["expiry_year"] != "":
		return apperrors.ErrInvalidExpiry
	}
	return nil
}

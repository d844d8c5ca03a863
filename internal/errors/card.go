package errors

var (
	ErrInvalidCardNumber = &DomainError{
		Code:    "INVALID_CARD_NUMBER",
		Message: "invalid card number",
	}
	ErrUnsupportedCardType = &DomainError{
		Code:    "UNSUPPORTED_CARD_TYPE",
		Message: "card network is not supported",
	}
	ErrInvalidExpiry = &DomainError{
		Code:    "INVALID_EXPIRY",
		Message: "invalid expiry date",
	}
	ErrCardExpired = &DomainError{
		Code:    "CARD_EXPIRED",
		Message: "card has expired",
	}
	ErrDuplicateCard = &DomainError{
		Code:    "DUPLICATE_CARD",
		Message: "card is already linked",
	}
	ErrCardNotFound = &DomainError{
		Code:    "CARD_NOT_FOUND",
		Message: "credit card not found",
	}
	ErrCardNotOwned = &DomainError{
		Code:    "CARD_NOT_OWNED",
		Message: "card does not belong to user",
	}
	ErrInvalidCardStatus = &DomainError{
		Code:    "INVALID_CARD_STATUS",
		Message: "card status must be active or disabled",
	}
	ErrBatchTooLarge = &DomainError{
		Code:    "BATCH_TOO_LARGE",
		Message: "too many card numbers in one request",
	}
)

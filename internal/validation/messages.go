package validation

// Field messages that callers map back to domain errors. Change them here
// only; cards.ValidationError matches on these values.
const (
	MsgNotDigits          = "must contain only digits"
	MsgInvalidCardNumber  = "must be a valid card number"
	MsgUnsupportedNetwork = "card network is not supported"
	MsgCardExpired        = "card has expired"
)

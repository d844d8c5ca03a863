package validation

const (
	// CVN lengths
	CVNLength     = 3
	AmexCVNLength = 4

	// Expiry window
	MaxExpiryYears = 20

	// String lengths
	MaxCardholderNameLength = 128
)

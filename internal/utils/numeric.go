package utils

// IsNumeric reports whether s is a plain decimal number: an optional single
// leading minus, at least one digit and at most one decimal point.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
	}

	hasDecimal, hasDigit := false, false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '.':
			if hasDecimal {
				return false
			}
			hasDecimal = true
		case c >= '0' && c <= '9':
			hasDigit = true
		default:
			return false
		}
	}
	return hasDigit
}

// IsDigits reports whether s is non-empty and made only of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

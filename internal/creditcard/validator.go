package creditcard

import "strings"

const (
	MinLength = 13
	MaxLength = 16
)

// IsValid reports whether cardNumber is 13 to 16 ASCII digits passing the
// Luhn mod-10 checksum.
func IsValid(cardNumber string) bool {
	if !isDigits(cardNumber) {
		return false
	}

	size := len(cardNumber)
	if size < MinLength || size > MaxLength {
		return false
	}

	odd, even := 0, 0
	// i walks the reversed number: i == 0 is the rightmost digit.
	for i := 0; i < size; i++ {
		digit := int(cardNumber[size-1-i] - '0')
		if i%2 == 0 {
			odd += digit
			continue
		}
		doubled := digit * 2
		if doubled > 9 {
			doubled -= 9
		}
		even += doubled
	}

	return (odd+even)%10 == 0
}

// DetermineCardType classifies cardNumber by network. The first matching
// rule wins, so the order below must not change.
func DetermineCardType(cardNumber string) CardType {
	if cardNumber == "" {
		return None
	}

	switch {
	case isVisa(cardNumber):
		return Visa
	case isMastercard(cardNumber):
		return Mastercard
	case isAmericanExpress(cardNumber):
		return AmericanExpress
	case isDiscover(cardNumber):
		return Discover
	case isDinersClub(cardNumber):
		return DinersClub
	case isJcb(cardNumber):
		return Jcb
	}
	return Unknown
}

// ValidateCardType reports whether cardNumber classifies as want.
func ValidateCardType(cardNumber string, want CardType) bool {
	return DetermineCardType(cardNumber) == want
}

func isVisa(n string) bool {
	return (len(n) == 13 || len(n) == 16) && n[0] == '4'
}

func isMastercard(n string) bool {
	return len(n) == 16 && n[0] == '5' && n[1] >= '1' && n[1] <= '5'
}

func isAmericanExpress(n string) bool {
	return len(n) == 15 && (strings.HasPrefix(n, "34") || strings.HasPrefix(n, "37"))
}

func isDiscover(n string) bool {
	return len(n) == 16 && strings.HasPrefix(n, "6011")
}

func isDinersClub(n string) bool {
	if len(n) != 14 {
		return false
	}
	if strings.HasPrefix(n, "36") || strings.HasPrefix(n, "38") {
		return true
	}
	// 300 through 305
	return n[0] == '3' && n[1] == '0' && n[2] >= '0' && n[2] <= '5'
}

func isJcb(n string) bool {
	switch len(n) {
	case 15:
		return strings.HasPrefix(n, "2131") || strings.HasPrefix(n, "1800")
	case 16:
		return n[0] == '3'
	}
	return false
}

func isDigits(s string) bool {
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

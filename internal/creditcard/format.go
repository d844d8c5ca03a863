package creditcard

import (
	"strconv"
	"strings"
	"time"
)

// DefaultDateFormat is the expiration pattern used when none is configured.
const DefaultDateFormat = "MMyy"

// LastFourDigits returns the last four characters of number as an integer,
// or 0 when the number is shorter than four or the tail is not numeric.
func LastFourDigits(number string) int {
	if len(number) < 4 {
		return 0
	}
	tail := number[len(number)-4:]
	if !isDigits(tail) {
		return 0
	}
	n, _ := strconv.Atoi(tail)
	return n
}

// Normalize strips the spaces, tabs and dashes people type between digit
// groups. It does not otherwise alter the input.
func Normalize(number string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-':
			return -1
		default:
			return r
		}
	}, strings.TrimSpace(number))
}

// MaskNumber hides all but the issuer prefix and last four digits.
func MaskNumber(number string) string {
	n := len(number)
	switch {
	case n == 0:
		return ""
	case n <= 4:
		return strings.Repeat("*", n)
	case n < 10:
		return strings.Repeat("*", n-4) + number[n-4:]
	}
	return number[:6] + strings.Repeat("*", n-10) + number[n-4:]
}

// FormatExpiration renders t with a day-free date pattern such as "MMyy",
// "MM/yy" or "MM/yyyy". Recognised tokens are MM, M, yyyy and yy; every
// other character is copied as is. An empty pattern means DefaultDateFormat.
func FormatExpiration(t time.Time, format string) string {
	if format == "" {
		format = DefaultDateFormat
	}

	var b strings.Builder
	for i := 0; i < len(format); {
		rest := format[i:]
		switch {
		case strings.HasPrefix(rest, "MM"):
			b.WriteString(pad2(int(t.Month())))
			i += 2
		case strings.HasPrefix(rest, "M"):
			b.WriteString(strconv.Itoa(int(t.Month())))
			i++
		case strings.HasPrefix(rest, "yyyy"):
			b.WriteString(strconv.Itoa(t.Year()))
			i += 4
		case strings.HasPrefix(rest, "yy"):
			b.WriteString(pad2(t.Year() % 100))
			i += 2
		default:
			b.WriteByte(format[i])
			i++
		}
	}
	return b.String()
}

// ExpirationDate returns the last instant of the given card expiry month in
// UTC. Cards stay usable through the end of the printed month.
func ExpirationDate(month, year int) time.Time {
	firstOfNext := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.Add(-time.Nanosecond)
}

// IsExpired reports whether a card with the given expiry month has expired
// at now.
func IsExpired(month, year int, now time.Time) bool {
	return now.After(ExpirationDate(month, year))
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

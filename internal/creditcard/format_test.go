package creditcard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLastFourDigits(t *testing.T) {
	tests := []struct {
		number string
		want   int
	}{
		{"6011298630901118", 1118},
		{"4388543049475174", 5174},
		{"4000000000000042", 42},
		{"1234", 1234},
		{"123", 0},
		{"", 0},
		{"4388543049475abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.want, LastFourDigits(tt.number))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "4388543049475174", Normalize(" 4388 5430-4947\t5174 "))
	assert.Equal(t, "abcd", Normalize("ab-cd"))
	assert.Equal(t, "", Normalize("   "))
	assert.True(t, IsValid(Normalize("4388-5430-4947-5174")))
}

func TestMaskNumber(t *testing.T) {
	tests := []struct {
		number string
		want   string
	}{
		{"", ""},
		{"123", "***"},
		{"1234", "****"},
		{"123456789", "*****6789"},
		{"4388543049475174", "438854******5174"},
		{"372371574901901", "372371*****1901"},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskNumber(tt.number))
		})
	}
}

func TestFormatExpiration(t *testing.T) {
	date := time.Date(2027, time.March, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		format string
		want   string
	}{
		{"", "0327"},
		{"MMyy", "0327"},
		{"MM/yy", "03/27"},
		{"MM/yyyy", "03/2027"},
		{"M-yyyy", "3-2027"},
		{"yyyyMM", "202703"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatExpiration(date, tt.format))
		})
	}

	assert.Equal(t, "1205", FormatExpiration(time.Date(2005, time.December, 1, 0, 0, 0, 0, time.UTC), ""))
}

func TestExpirationDate(t *testing.T) {
	end := ExpirationDate(2, 2028)
	assert.Equal(t, 2028, end.Year())
	assert.Equal(t, time.February, end.Month())
	assert.Equal(t, 29, end.Day())

	dec := ExpirationDate(12, 2026)
	assert.Equal(t, time.December, dec.Month())
	assert.Equal(t, 31, dec.Day())
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

	assert.False(t, IsExpired(10, 2026, now))
	assert.False(t, IsExpired(1, 2027, now))
	assert.True(t, IsExpired(9, 2026, now))
	assert.True(t, IsExpired(12, 2025, now))
}

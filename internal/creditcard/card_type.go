package creditcard

import (
	"fmt"
	"strings"
)

// CardType is the card network inferred from a number's prefix and length.
type CardType int

const (
	Unknown         CardType = -1
	None            CardType = 0
	Visa            CardType = 1
	Mastercard      CardType = 2
	AmericanExpress CardType = 3
	Discover        CardType = 4
	DinersClub      CardType = 5
	Jcb             CardType = 6
)

var cardTypeNames = map[CardType]string{
	Unknown:         "Unknown",
	None:            "None",
	Visa:            "Visa",
	Mastercard:      "Mastercard",
	AmericanExpress: "AmericanExpress",
	Discover:        "Discover",
	DinersClub:      "DinersClub",
	Jcb:             "Jcb",
}

// aliases accepted by ParseCardType in addition to the canonical names.
var cardTypeAliases = map[string]CardType{
	"american express": AmericanExpress,
	"amex":             AmericanExpress,
	"diners club":      DinersClub,
	"diners":           DinersClub,
	"master card":      Mastercard,
}

// String returns the enum name.
func (t CardType) String() string {
	if name, ok := cardTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("CardType(%d)", int(t))
}

// IsNetwork reports whether t names an actual card network.
func (t CardType) IsNetwork() bool {
	return t >= Visa && t <= Jcb
}

// AllCardTypes lists the recognised networks in classification order.
func AllCardTypes() []CardType {
	return []CardType{Visa, Mastercard, AmericanExpress, Discover, DinersClub, Jcb}
}

// ParseCardType maps a name back to a CardType, case-insensitively.
func ParseCardType(s string) (CardType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for t, name := range cardTypeNames {
		if strings.ToLower(name) == key {
			return t, nil
		}
	}
	if t, ok := cardTypeAliases[key]; ok {
		return t, nil
	}
	return Unknown, fmt.Errorf("unknown card type %q", s)
}

func (t CardType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *CardType) UnmarshalText(text []byte) error {
	parsed, err := ParseCardType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

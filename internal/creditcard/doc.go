/*
Package creditcard provides advisory pre-validation of card numbers.

Two pure functions make up the contract:

	creditcard.IsValid("4388543049475174")           // true
	creditcard.DetermineCardType("4388543049475174") // creditcard.Visa

IsValid runs the Luhn mod-10 checksum on strings of 13 to 16 ASCII digits.
DetermineCardType classifies by prefix and length, checking Visa, Mastercard,
American Express, Discover, Diners Club and JCB in that order. The two are
independent: a number with a known prefix and a bad checksum still
classifies.

Nothing in this package returns an error or panics on malformed input.
Empty input is valid=false / None, anything else unrecognised is
valid=false / Unknown.

Display helpers (LastFourDigits, MaskNumber, FormatExpiration) and the
CreditCard value live here too, but are not part of the validation result.

Authoritative validation happens at the card network or payment processor.
The network ranges used here are the historical ones and are narrower than
current BIN tables (16-digit Amex, Discover 64/65, JCB 3528-3589 are not
recognised).
*/
package creditcard

// Package numtext converts between numbers and English cardinal text.
//
// The package provides conversion in both directions:
//
//   - Convert turns a non-negative integer into English words.
//   - ConvertString does the same for a figure written as text.
//   - Parse turns English number words back into an integer.
//
// Numbers are decomposed tier by tier from quadrillion down to units.
// Tiers are joined with "and" when the rest of the number is below one
// hundred or a whole multiple of one hundred, and with a comma otherwise;
// hundreds are always joined to their tens with "and":
//
//	1005   -> "one thousand and five"
//	200400 -> "two hundred thousand and four hundred"
//	200450 -> "two hundred thousand, four hundred and fifty"
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Values range over [0, 10^18); the largest named tier is quadrillion.
//   - Negative numbers, fractions and ordinals are rejected.
package numtext

// Convert returns the English cardinal text for n.
// Zero returns "zero". Negative n returns ErrInvalidInput; n >= 10^18
// returns ErrOutOfRange.
func Convert(n int64) (string, error) {
	return convert(n)
}

// ConvertString converts a figure written as text, such as "1,005" or
// "200_450", to English cardinal text.
//
// A leading '+' is allowed, and so is a fractional part made only of zeros
// ("5.00"). Returns ErrInvalidInput for empty, non-numeric, negative or
// non-integral input and ErrOutOfRange for values at or above 10^18.
func ConvertString(s string) (string, error) {
	return convertString(s)
}

// Parse converts English cardinal number text to an integer.
// Input is NFC-composed and case-insensitive; words are separated by spaces
// or commas, a hyphen may only join a tens word to a unit word, and "and" is
// optional after "hundred" or a scale word. A bare "hundred" or scale word
// at the start of the input means one of it.
//
// Returns ErrInvalidInput for empty or unrecognisable input.
func Parse(s string) (int64, error) {
	return parse(s)
}

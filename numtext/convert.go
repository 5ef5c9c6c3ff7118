// Unexported conversion functions for English number-to-text conversion.
package numtext

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const growConvert = 96 // estimated bytes for a typical cardinal conversion

// convert converts a non-negative int64 below maxValue to English cardinal text.
func convert(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: negative value %d", ErrInvalidInput, n)
	}
	if n >= maxValue {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	if n == 0 {
		return wordZero, nil
	}

	var b strings.Builder
	b.Grow(growConvert)

	for _, t := range tiers {
		count := n / t.divisor
		if count == 0 {
			continue
		}
		writeGroup(&b, count)
		b.WriteByte(' ')
		b.WriteString(t.word)

		n -= count * t.divisor
		if n == 0 {
			return b.String(), nil
		}
		b.WriteString(separator(n))
	}

	writeGroup(&b, n)
	return b.String(), nil
}

// separator returns the joiner between a tier phrase and the rest of the
// number: "and" when the rest is below one hundred or a whole multiple of
// one hundred, a comma otherwise.
func separator(rest int64) string {
	if rest < hundred || rest%hundred == 0 {
		return sepAnd
	}
	return sepComma
}

// writeGroup writes a number in [1, 999] as English text into b.
// Hundreds and the rest are always joined with "and".
func writeGroup(b *strings.Builder, n int64) {
	h := n / hundred
	r := n % hundred

	if h > 0 {
		writeTens(b, h)
		b.WriteByte(' ')
		b.WriteString(wordHundred)
		if r > 0 {
			b.WriteString(sepAnd)
		}
	}
	if r > 0 {
		writeTens(b, r)
	}
}

// writeTens writes a number in [1, 99] as English text into b.
func writeTens(b *strings.Builder, n int64) {
	switch {
	case n < 10:
		b.WriteString(ones[n])
	case n < 13:
		b.WriteString(smallTeens[n-10])
	case n < 20:
		u := n - 10
		if root := teenRoots[u]; root != "" {
			b.WriteString(root)
		} else {
			b.WriteString(ones[u])
		}
		b.WriteString(suffixTeen)
	default:
		b.WriteString(tens[n/10])
		if u := n % 10; u > 0 {
			b.WriteByte('-')
			b.WriteString(hyphenUnits[u])
		}
	}
}

// convertString converts a figure written as text. It accepts an optional
// '+' sign, '_' or ',' digit grouping, and a fractional part made only of
// zeros.
func convertString(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidInput)
	}

	digits := s
	negative := false
	switch digits[0] {
	case '-':
		negative = true
		digits = digits[1:]
	case '+':
		digits = digits[1:]
	}

	if sepIdx := strings.IndexByte(digits, '.'); sepIdx != -1 {
		frac := digits[sepIdx+1:]
		if !allDigits(frac) {
			return "", fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
		}
		if !allZeros(frac) {
			return "", fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, s)
		}
		digits = digits[:sepIdx]
	}

	digits = stripGrouping(digits)
	if !allDigits(digits) {
		return "", fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}
	// Sign first: a negative figure is invalid however large it is.
	if negative && !allZeros(digits) {
		return "", fmt.Errorf("%w: negative value %q", ErrInvalidInput, s)
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return "", fmt.Errorf("%w: %q", ErrOutOfRange, s)
		}
		return "", fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}

	return convert(n)
}

// stripGrouping removes '_' or ',' thousands separators. Only one kind of
// separator may be used, the first group holds one to three digits and every
// later group exactly three. Anything else is returned unchanged so that the
// digit check rejects it.
func stripGrouping(s string) string {
	sep := ""
	switch {
	case strings.Contains(s, "_") && strings.Contains(s, ","):
		return s
	case strings.Contains(s, "_"):
		sep = "_"
	case strings.Contains(s, ","):
		sep = ","
	default:
		return s
	}

	groups := strings.Split(s, sep)
	if len(groups[0]) == 0 || len(groups[0]) > 3 {
		return s
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return s
		}
	}
	return strings.Join(groups, "")
}

// allDigits reports whether s consists entirely of ASCII digit characters.
// An empty string returns false.
func allDigits(s string) bool {
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

// allZeros reports whether s consists entirely of '0' characters.
func allZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

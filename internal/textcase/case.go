// Package textcase provides English case conversion and Unicode composition
// for number words.
//
// Casers from golang.org/x/text/cases carry state and must not be shared
// between goroutines, so every call builds its own.
//
// All functions are safe for concurrent use.
package textcase

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower returns s lower-cased with English rules.
func Lower(s string) string {
	if isLowerASCII(s) {
		return s
	}
	return cases.Lower(language.English).String(s)
}

// isLowerASCII reports whether s has no bytes outside lower-case ASCII
// letters, digits, punctuation and spaces. Such strings are already lower-case.
func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf || (c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

package textcase

import "golang.org/x/text/unicode/norm"

// ComposeNFC returns the NFC form of s. Decomposed input such as
// "é" from some keyboards and PDFs is composed before matching.
func ComposeNFC(s string) string {
	// Fast path: most input is already composed.
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// Text-to-number parsing for English cardinal text.
package numtext

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/az-ai-labs/wordfigure/internal/textcase"
)

type wordKind int

const (
	kindNone wordKind = iota
	kindUnit          // one..nine
	kindTeen          // ten..nineteen
	kindTens          // twenty..ninety
	kindHundred
	kindScale // thousand..quadrillion
)

type wordEntry struct {
	value int64
	kind  wordKind
}

// wordValues maps each English cardinal word to its value and grammatical kind.
// Built once from the conversion tables so both directions share one lexicon.
var wordValues = buildWordValues()

func buildWordValues() map[string]wordEntry {
	m := make(map[string]wordEntry, 32)
	for i := 1; i < len(ones); i++ {
		m[ones[i]] = wordEntry{value: int64(i), kind: kindUnit}
	}
	for i, w := range smallTeens {
		m[w] = wordEntry{value: int64(10 + i), kind: kindTeen}
	}
	for u := 3; u < len(ones); u++ {
		root := teenRoots[u]
		if root == "" {
			root = ones[u]
		}
		m[root+suffixTeen] = wordEntry{value: int64(10 + u), kind: kindTeen}
	}
	for t := 2; t < len(tens); t++ {
		m[tens[t]] = wordEntry{value: int64(t * 10), kind: kindTens}
	}
	m[wordHundred] = wordEntry{value: hundred, kind: kindHundred}
	for _, t := range tiers {
		m[t.word] = wordEntry{value: t.divisor, kind: kindScale}
	}
	return m
}

// parse converts English cardinal number text to int64.
// The accepted grammar mirrors what convert produces, with "and", commas and
// hyphens optional.
func parse(s string) (int64, error) {
	s = textcase.Lower(textcase.ComposeNFC(s))
	tokens, err := tokenize(s)
	if err != nil {
		return 0, err
	}

	if len(tokens) == 0 {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidInput)
	}

	if len(tokens) == 1 && tokens[0] == wordZero {
		return 0, nil
	}

	var (
		total     int64 // sum of closed scale groups
		group     int64 // 0–999 accumulator for the group under construction
		lastScale int64 // most recent scale word; scales must descend
		prev      = kindNone
		afterAnd  bool
	)

	for i, tok := range tokens {
		if tok == wordAnd {
			if afterAnd || (prev != kindHundred && prev != kindScale) || i == len(tokens)-1 {
				return 0, fmt.Errorf("%w: misplaced %q", ErrInvalidInput, wordAnd)
			}
			afterAnd = true
			continue
		}

		if tok == wordZero {
			return 0, fmt.Errorf("%w: unexpected %q in compound", ErrInvalidInput, wordZero)
		}

		entry, ok := wordValues[tok]
		if !ok {
			return 0, fmt.Errorf("%w: unknown word %q", ErrInvalidInput, tok)
		}

		switch entry.kind {
		case kindUnit:
			if prev != kindNone && prev != kindTens && prev != kindHundred && prev != kindScale {
				return 0, unexpected(tok)
			}
			group += entry.value

		case kindTeen, kindTens:
			if prev != kindNone && prev != kindHundred && prev != kindScale {
				return 0, unexpected(tok)
			}
			group += entry.value

		case kindHundred:
			if afterAnd {
				return 0, unexpected(tok)
			}
			switch prev {
			case kindUnit:
				if group >= 10 {
					return 0, unexpected(tok)
				}
				group *= hundred
			case kindNone:
				// Bare leading "hundred" reads as "one hundred".
				group = hundred
			default:
				return 0, unexpected(tok)
			}

		case kindScale:
			if afterAnd || prev == kindScale {
				return 0, unexpected(tok)
			}
			if lastScale != 0 && entry.value >= lastScale {
				return 0, fmt.Errorf("%w: %q after a smaller scale", ErrInvalidInput, tok)
			}
			if group == 0 {
				if prev != kindNone {
					return 0, unexpected(tok)
				}
				// Bare leading scale word reads as "one <scale>".
				group = 1
			}
			total += group * entry.value
			group = 0
			lastScale = entry.value
		}

		prev = entry.kind
		afterAnd = false
	}

	return total + group, nil
}

func unexpected(tok string) error {
	return fmt.Errorf("%w: unexpected %q", ErrInvalidInput, tok)
}

// tokenize splits s into number words on whitespace and commas. A hyphen is
// only allowed between a tens word and a unit word ("forty-seven"); such a
// compound yields both words.
func tokenize(s string) ([]string, error) {
	fields := strings.FieldsFunc(s, isTokenSeparator)
	tokens := make([]string, 0, len(fields)+2)
	for _, f := range fields {
		if !strings.Contains(f, "-") {
			tokens = append(tokens, f)
			continue
		}
		parts := strings.Split(f, "-")
		if len(parts) != 2 || wordValues[parts[0]].kind != kindTens || wordValues[parts[1]].kind != kindUnit {
			return nil, fmt.Errorf("%w: malformed compound %q", ErrInvalidInput, f)
		}
		tokens = append(tokens, parts[0], parts[1])
	}
	return tokens, nil
}

// isTokenSeparator reports whether r separates number words.
func isTokenSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ','
}

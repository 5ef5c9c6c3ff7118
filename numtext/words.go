// Word tables for English number-to-text conversion.
package numtext

import "github.com/az-ai-labs/wordfigure/internal/textcase"

const (
	// maxValue is the first value Convert rejects. The largest tier is
	// quadrillion, so its count must stay below one thousand.
	maxValue int64 = 1_000_000_000_000_000_000
	hundred  int64 = 100

	wordZero    = "zero"
	wordHundred = "hundred"
	wordAnd     = "and"
	suffixTeen  = "teen"

	sepAnd   = " and "
	sepComma = ", "
)

var ones = [10]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
}

// tens is indexed by tens digit (2–9); indices 0 and 1 are unused.
var tens = [10]string{
	"",
	"",
	"twenty",
	"thirty",
	"forty",
	"fifty",
	"sixty",
	"seventy",
	"eighty",
	"ninety",
}

// teenRoots overrides the unit word before "teen" for 13, 15 and 18.
var teenRoots = [10]string{3: "thir", 5: "fif", 8: "eigh"}

// smallTeens holds the irregular literals for 10, 11 and 12.
var smallTeens = [3]string{"ten", "eleven", "twelve"}

// hyphenUnits holds the unit words as written after a tens word ("forty-seven").
// They are lower-cased once at init so the hyphenated form stays canonical
// whatever casing ones carries.
var hyphenUnits = lowerAll(ones)

type tier struct {
	divisor int64
	word    string
}

// tiers lists named powers of one thousand from largest to smallest.
// hundred is handled within group conversion and is not listed here.
var tiers = []tier{
	{divisor: 1_000_000_000_000_000, word: "quadrillion"},
	{divisor: 1_000_000_000_000, word: "trillion"},
	{divisor: 1_000_000_000, word: "billion"},
	{divisor: 1_000_000, word: "million"},
	{divisor: 1_000, word: "thousand"},
}

func lowerAll(words [10]string) [10]string {
	var out [10]string
	for i, w := range words {
		out[i] = textcase.Lower(w)
	}
	return out
}

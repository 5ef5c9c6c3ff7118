package textcase

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestLower(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"upper", "SEVEN", "seven"},
		{"title", "Forty", "forty"},
		{"already lower", "nine", "nine"},
		{"empty", "", ""},
		{"mixed with hyphen", "Forty-Seven", "forty-seven"},
		{"non-ascii", "ÜBER", "über"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, Lower(tt.input), tt.want)
		})
	}
}

func BenchmarkLower_AlreadyLower(b *testing.B) {
	s := "forty-seven"
	for b.Loop() {
		Lower(s)
	}
}

func BenchmarkLower_MixedCase(b *testing.B) {
	s := "Forty-Seven"
	for b.Loop() {
		Lower(s)
	}
}

package numtext

import (
	"fmt"
	"testing"

	"gotest.tools/v3/assert"
)

func TestWordFigure(t *testing.T) {
	t.Parallel()

	t.Run("constructor value", func(t *testing.T) {
		t.Parallel()
		got, err := NewWordFigure("105").ToWords()
		assert.NilError(t, err)
		assert.Equal(t, got, "one hundred and five")
	})

	t.Run("call value wins", func(t *testing.T) {
		t.Parallel()
		w := NewWordFigure("105")
		got, err := w.ToWords("1005")
		assert.NilError(t, err)
		assert.Equal(t, got, "one thousand and five")

		held, ok := w.Value()
		assert.Assert(t, ok)
		assert.Equal(t, held, "105")
	})

	t.Run("with copies", func(t *testing.T) {
		t.Parallel()
		w := NewWordFigure()
		w2 := w.With("forty-seven")

		_, ok := w.Value()
		assert.Assert(t, !ok)

		n, err := w2.ToFigure()
		assert.NilError(t, err)
		assert.Equal(t, n, int64(47))
	})

	t.Run("no value", func(t *testing.T) {
		t.Parallel()
		_, err := NewWordFigure().ToWords()
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = WordFigure{}.ToFigure()
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestWordFigureConvert(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		value   string
		dir     Direction
		want    string
		wantErr error
	}{
		{"words", "200400", Words, "two hundred thousand and four hundred", nil},
		{"figures", "two hundred thousand and four hundred", Figures, "200400", nil},
		{"figures zero", "zero", Figures, "0", nil},
		{"words invalid", "-1", Words, "", ErrInvalidInput},
		{"figures invalid", "seventeenth", Figures, "", ErrInvalidInput},
		{"unknown direction", "1", Direction(7), "", ErrNotImplemented},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewWordFigure(tt.value).Convert(tt.dir)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, got, "")
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, got, tt.want)
		})
	}
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  Direction
		ok    bool
	}{
		{"words", Words, true},
		{"word", Words, true},
		{"figures", Figures, true},
		{"figure", Figures, true},
		{"roman", 0, false},
		{"", 0, false},
	}

	for _, tt := range cases {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDirection(tt.input)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, got, tt.want)
			assert.Equal(t, got.String(), map[Direction]string{Words: "words", Figures: "figures"}[tt.want])
		})
	}

	assert.Equal(t, Direction(9).String(), "Direction(9)")
}

func ExampleWordFigure() {
	w := NewWordFigure("47")
	words, _ := w.ToWords()
	figure, _ := w.ToFigure(words)
	fmt.Println(words, figure)
	// Output: forty-seven 47
}

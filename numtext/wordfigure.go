package numtext

import (
	"fmt"
	"strconv"
)

// Direction selects which way a WordFigure converts.
type Direction int

const (
	// Words converts a figure to English words.
	Words Direction = iota

	// Figures converts English words to a figure.
	Figures
)

// String returns the direction name used in configuration and flags.
func (d Direction) String() string {
	switch d {
	case Words:
		return "words"
	case Figures:
		return "figures"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// ParseDirection returns the Direction named by s ("words" or "figures").
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "words", "word":
		return Words, nil
	case "figures", "figure":
		return Figures, nil
	}
	return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, s)
}

// WordFigure is an immutable holder for a value awaiting conversion in
// either direction. The zero value holds nothing.
type WordFigure struct {
	value string
	set   bool
}

// NewWordFigure returns a WordFigure holding value, if one is given.
// Only the first value is used.
func NewWordFigure(value ...string) WordFigure {
	if len(value) == 0 {
		return WordFigure{}
	}
	return WordFigure{value: value[0], set: true}
}

// With returns a copy of w holding value.
func (w WordFigure) With(value string) WordFigure {
	return WordFigure{value: value, set: true}
}

// Value returns the held value and whether one is set.
func (w WordFigure) Value() (string, bool) {
	return w.value, w.set
}

// ToWords converts a figure to words. A value passed here takes precedence
// over the held one.
func (w WordFigure) ToWords(value ...string) (string, error) {
	v, err := w.pick(value)
	if err != nil {
		return "", err
	}
	return convertString(v)
}

// ToFigure converts words to a figure. A value passed here takes precedence
// over the held one.
func (w WordFigure) ToFigure(value ...string) (int64, error) {
	v, err := w.pick(value)
	if err != nil {
		return 0, err
	}
	return parse(v)
}

// Convert converts the held value in direction d and returns the result as
// text. Figures are written in base 10.
func (w WordFigure) Convert(d Direction) (string, error) {
	switch d {
	case Words:
		return w.ToWords()
	case Figures:
		n, err := w.ToFigure()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	}
	return "", fmt.Errorf("%w: direction %v", ErrNotImplemented, d)
}

func (w WordFigure) pick(value []string) (string, error) {
	if len(value) > 0 {
		return value[0], nil
	}
	if !w.set {
		return "", fmt.Errorf("%w: no value", ErrInvalidInput)
	}
	return w.value, nil
}

package solver

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestParseCluesAcceptsDotsAndZeros(t *testing.T) {
	is := is.New(t)
	s := "10" + strings.Repeat(".", 78) + "9"
	clues, err := ParseClues(s)
	is.NoErr(err)
	is.Equal(clues[0], 1)
	is.Equal(clues[1], 0)
	is.Equal(clues[40], 0)
	is.Equal(clues[80], 9)
}

func TestParseCluesRejectsWrongLength(t *testing.T) {
	is := is.New(t)
	_, err := ParseClues(strings.Repeat(".", 80))
	is.True(errors.Is(err, ErrBadInput))

	_, err = ParseClues(strings.Repeat(".", 82))
	is.True(errors.Is(err, ErrBadInput))
}

func TestParseCluesRejectsIllegalCharacters(t *testing.T) {
	is := is.New(t)
	_, err := ParseClues("x" + strings.Repeat(".", 80))
	is.True(errors.Is(err, ErrBadInput))
	is.True(!IsContradiction(err)) // bad input is not "no solution"
}

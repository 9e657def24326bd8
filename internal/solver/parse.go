package solver

import (
	"errors"
	"fmt"
)

// ErrBadInput marks a malformed puzzle string, as opposed to a well-formed
// puzzle that merely has no solution.
var ErrBadInput = errors.New("malformed puzzle")

// ParseClues reads an 81-character row-major puzzle string. Digits 1-9 are
// clues, '.' and '0' are empty cells, anything else is rejected. The
// result maps cell index to clue digit, 0 where empty.
func ParseClues(s string) ([81]int, error) {
	var clues [81]int
	n := 0
	for _, r := range s {
		var v int
		switch {
		case r == '.' || r == '0':
			v = 0
		case r >= '1' && r <= '9':
			v = int(r - '0')
		default:
			return clues, fmt.Errorf("%w: unexpected character %q", ErrBadInput, r)
		}
		if n == 81 {
			return clues, fmt.Errorf("%w: more than 81 cells", ErrBadInput)
		}
		clues[n] = v
		n++
	}
	if n != 81 {
		return clues, fmt.Errorf("%w: got %d cells, want 81", ErrBadInput, n)
	}
	return clues, nil
}

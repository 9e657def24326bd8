package solver

import (
	"errors"
	"fmt"
)

// Contradiction errors. Both mean "this grid state has no valid
// completion"; the search recovers from them at the nearest choice point,
// they never abort the process.
var (
	ErrNoCandidates = errors.New("cell has no candidates left")
	ErrNoPlace      = errors.New("unit has no place for a value")
)

// IsContradiction reports whether err marks a contradictory grid state.
func IsContradiction(err error) bool {
	return errors.Is(err, ErrNoCandidates) || errors.Is(err, ErrNoPlace)
}

// eliminate removes digit from the cell's candidates and cascades the
// consequences. A cell left with one candidate forces that digit out of
// all its peers (naked single). A cell left with several candidates may
// instead leave one of its units with a single remaining home for digit,
// which forces an assignment there (hidden single). Removing a digit that
// is already absent is a no-op.
func eliminate(g *Grid, cell, digit int) error {
	if !g[cell].Has(digit) {
		return nil
	}
	g[cell] = g[cell].Remove(digit)

	switch g[cell].Count() {
	case 0:
		return fmt.Errorf("cell %d: %w", cell, ErrNoCandidates)
	case 1:
		forced, _ := g[cell].Single()
		for _, p := range peersOf[cell] {
			if err := eliminate(g, p, forced); err != nil {
				return err
			}
		}
	default:
		for _, u := range unitsOf[cell] {
			places, last := 0, -1
			for _, c := range units[u] {
				if g[c].Has(digit) {
					places++
					last = c
				}
			}
			switch places {
			case 0:
				return fmt.Errorf("digit %d, unit %d: %w", digit, u, ErrNoPlace)
			case 1:
				if err := assign(g, last, digit); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// assign pins cell to digit by eliminating every other candidate from it.
// It is the only operation that fixes a cell from outside: clue loading
// and search branching both route through it. On error the grid must be
// treated as contradictory; partial mutation is not rolled back.
func assign(g *Grid, cell, digit int) error {
	for _, other := range g[cell].Digits() {
		if other == digit {
			continue
		}
		if err := eliminate(g, cell, other); err != nil {
			return err
		}
	}
	return nil
}

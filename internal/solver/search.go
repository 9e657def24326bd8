package solver

import "errors"

// ErrNoSolution means every branch of the search was exhausted. For a
// well-formed but unsolvable puzzle this is the expected result, not a
// fault.
var ErrNoSolution = errors.New("puzzle has no solution")

// Stats counts the work done by a solve.
type Stats struct {
	Nodes  int // search nodes visited
	Clones int // speculative grid copies made
}

// Solve assigns the given clues (index = cell, 0 = no clue) onto a fresh
// grid and searches for a completion. Contradictory clues fail here,
// before any branching happens.
func Solve(clues [81]int) (*Grid, Stats, error) {
	var stats Stats
	g := NewGrid()
	for cell, d := range clues {
		if d == 0 {
			continue
		}
		if err := assign(g, cell, d); err != nil {
			return nil, stats, err
		}
	}
	solved, err := search(g, &stats)
	if err != nil {
		return nil, stats, err
	}
	return solved, stats, nil
}

// SolveString parses and solves an 81-character puzzle string.
func SolveString(s string) (*Grid, Stats, error) {
	clues, err := ParseClues(s)
	if err != nil {
		return nil, Stats{}, err
	}
	return Solve(clues)
}

// search runs depth-first over the candidate digits of the most
// constrained undecided cell, cloning the grid before each speculative
// assignment so that a failed branch is dropped without touching the
// parent. The first solved descendant wins.
func search(g *Grid, stats *Stats) (*Grid, error) {
	stats.Nodes++
	cell, ok := mostConstrained(g)
	if !ok {
		return g, nil // every cell decided
	}
	for _, d := range g[cell].Digits() {
		clone := g.Clone()
		stats.Clones++
		if err := assign(clone, cell, d); err != nil {
			continue
		}
		if solved, err := search(clone, stats); err == nil {
			return solved, nil
		}
	}
	return nil, ErrNoSolution
}

// mostConstrained picks the undecided cell with the fewest remaining
// candidates, lowest index first. ok is false when the grid is solved.
func mostConstrained(g *Grid) (cell int, ok bool) {
	best, bestCount := -1, 10
	for i, m := range g {
		if n := m.Count(); n > 1 && n < bestCount {
			best, bestCount = i, n
			if n == 2 {
				break // cannot do better
			}
		}
	}
	return best, best >= 0
}

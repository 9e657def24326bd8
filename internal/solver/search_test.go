package solver

import (
	"testing"

	"github.com/matryer/is"
)

// The classic 17-clue-style example from Norvig's solver essay, with its
// unique solution.
const (
	easyPuzzle   = "003020600900305001001806400008102900700000008006708200002609500800203009005010300"
	easySolution = "483921657967345821251876493548132976729564138136798245372689514814253769695417382"
)

func assertValidSolution(is *is.I, g *Grid, givens string) {
	is.True(g.Solved())
	digits := g.Digits()
	for u := range units {
		var seen Mask
		for _, c := range units[u] {
			seen |= maskOf(digits[c])
		}
		is.Equal(seen, FullMask) // each unit holds each digit exactly once
	}
	for i, r := range givens {
		if r != '.' && r != '0' {
			is.Equal(digits[i], int(r-'0')) // givens preserved
		}
	}
}

func TestSolveClassicPuzzle(t *testing.T) {
	is := is.New(t)
	g, _, err := SolveString(easyPuzzle)
	is.NoErr(err)
	assertValidSolution(is, g, easyPuzzle)
	is.Equal(g.String(), easySolution)
}

func TestSolveSingleEmptyCell(t *testing.T) {
	is := is.New(t)
	puzzle := easySolution[:40] + "." + easySolution[41:]

	g, stats, err := SolveString(puzzle)
	is.NoErr(err)
	is.Equal(g.String(), easySolution) // the one hole gets the forced digit
	is.Equal(stats.Clones, 0)
}

func TestConflictingCluesFailBeforeSearch(t *testing.T) {
	is := is.New(t)
	puzzle := "55" + "..............................................................................."

	g, stats, err := SolveString(puzzle)
	is.True(g == nil)
	is.True(IsContradiction(err))
	is.Equal(stats.Nodes, 0) // rejected during clue assignment, not mid-search
}

func TestSolvedInputReturnsUnchanged(t *testing.T) {
	is := is.New(t)
	g, stats, err := SolveString(easySolution)
	is.NoErr(err)
	is.Equal(g.String(), easySolution)
	is.Equal(stats.Clones, 0) // zero branching needed
}

func TestPropagationOnlySolveNeverClones(t *testing.T) {
	is := is.New(t)
	// Blank one cell in four different rows; each resolves as a naked
	// single while the clues are still being assigned.
	b := []byte(easySolution)
	for _, cell := range []int{0, 20, 40, 60} {
		b[cell] = '.'
	}

	g, stats, err := SolveString(string(b))
	is.NoErr(err)
	is.Equal(g.String(), easySolution)
	is.Equal(stats.Clones, 0)
}

func TestHardPuzzleBranches(t *testing.T) {
	is := is.New(t)
	// One of the hard instances from Norvig's essay: propagation alone is
	// not enough, the search has to guess.
	const hard = "4.....8.5.3..........7......2.....6.....8.4......1.......6.3.7.5..2.....1.4......"

	g, stats, err := SolveString(hard)
	is.NoErr(err)
	assertValidSolution(is, g, hard)
	is.True(stats.Clones > 0)
}

package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"sudoku_solver_go/internal/solver"
)

const (
	easyPuzzle   = "003020600900305001001806400008102900700000008006708200002609500800203009005010300"
	easySolution = "483921657967345821251876493548132976729564138136798245372689514814253769695417382"
)

func TestSolveAllMixedCorpus(t *testing.T) {
	is := is.New(t)
	conflicting := "55" + "..............................................................................."
	puzzles := []string{easyPuzzle, conflicting, "not a puzzle"}

	results, summary, err := SolveAll(context.Background(), puzzles, 2)
	is.NoErr(err)
	is.Equal(len(results), 3)

	is.NoErr(results[0].Err)
	is.Equal(results[0].Solution, easySolution)

	is.True(solver.IsContradiction(results[1].Err))
	is.True(errors.Is(results[2].Err, solver.ErrBadInput))

	is.Equal(summary.Puzzles, 3)
	is.Equal(summary.Solved, 1)
	is.Equal(summary.Failed, 2)
}

func TestSolveAllDefaultsWorkerCount(t *testing.T) {
	is := is.New(t)
	results, summary, err := SolveAll(context.Background(), []string{easySolution}, 0)
	is.NoErr(err)
	is.Equal(summary.Solved, 1)
	is.Equal(results[0].Stats.Clones, 0) // already solved, nothing speculative
}

func TestLoadFileSkipsCommentsAndBlanks(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "corpus.txt")
	content := "# test corpus\n\n" + easyPuzzle + "\n\n" + easySolution + "\n"
	is.NoErr(os.WriteFile(path, []byte(content), 0644))

	puzzles, err := LoadFile(path)
	is.NoErr(err)
	is.Equal(len(puzzles), 2)
	is.Equal(puzzles[0], easyPuzzle)
}

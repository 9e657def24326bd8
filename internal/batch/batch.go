package batch

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"sudoku_solver_go/internal/solver"
)

// Result is the outcome of solving one corpus entry.
type Result struct {
	Index    int
	Givens   string
	Solution string
	Stats    solver.Stats
	Elapsed  time.Duration
	Err      error
}

// Summary aggregates a corpus run.
type Summary struct {
	Puzzles int
	Solved  int
	Failed  int
	Total   time.Duration
	Slowest time.Duration
}

// LoadFile reads a corpus of puzzles, one per line. Blank lines and lines
// starting with '#' are skipped.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer f.Close()

	var puzzles []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		puzzles = append(puzzles, line)
	}
	return puzzles, sc.Err()
}

// SolveAll solves every puzzle on a bounded worker pool. Each solve works
// on its own grid, so workers need no synchronization beyond the results
// slice slots they own. Per-puzzle failures (bad input, no solution) land
// in the results; only context cancellation aborts the run.
func SolveAll(ctx context.Context, puzzles []string, workers int) ([]Result, Summary, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(puzzles))

	gr, ctx := errgroup.WithContext(ctx)
	gr.SetLimit(workers)
	for i, p := range puzzles {
		gr.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			g, stats, err := solver.SolveString(p)
			r := Result{
				Index:   i,
				Givens:  p,
				Stats:   stats,
				Elapsed: time.Since(start),
				Err:     err,
			}
			if err == nil {
				r.Solution = g.String()
			}
			results[i] = r
			log.Debug().
				Int("puzzle", i).
				Int("nodes", stats.Nodes).
				Dur("elapsed", r.Elapsed).
				Err(err).
				Msg("puzzle done")
			return nil
		})
	}
	if err := gr.Wait(); err != nil {
		return nil, Summary{}, err
	}
	return results, summarize(results), nil
}

func summarize(results []Result) Summary {
	solved := lo.Filter(results, func(r Result, _ int) bool { return r.Err == nil })
	s := Summary{
		Puzzles: len(results),
		Solved:  len(solved),
		Failed:  len(results) - len(solved),
		Total:   lo.SumBy(results, func(r Result) time.Duration { return r.Elapsed }),
	}
	if len(results) > 0 {
		slowest := lo.MaxBy(results, func(a, b Result) bool { return a.Elapsed > b.Elapsed })
		s.Slowest = slowest.Elapsed
	}
	return s
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sudoku_solver_go/internal/batch"
	"sudoku_solver_go/internal/solver"
	"sudoku_solver_go/internal/store"
	"sudoku_solver_go/internal/types"
	"sudoku_solver_go/internal/visualizer"
)

var (
	file     = flag.String("file", "", "solve every puzzle in this file, one per line")
	workers  = flag.Int("workers", 0, "worker count for -file (0 = all CPUs)")
	upload   = flag.Bool("upload", false, "upload solved puzzles to PocketBase")
	storeURL = flag.String("store-url", "https://base.mljr.eu", "PocketBase instance used with -upload")
	source   = flag.String("source", "cli", "source label attached to uploaded puzzles")
	jsonOut  = flag.String("json", "", "also write the solved puzzle as JSON to this file")
	debug    = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	var ps *store.Store
	if *upload {
		var err error
		ps, err = store.New(*storeURL)
		if err != nil {
			log.Fatal().Err(err).Msg("could not connect to the puzzle store")
		}
	}

	switch {
	case *file != "":
		runCorpus(ps)
	case flag.NArg() == 1:
		runOne(flag.Arg(0), ps)
	default:
		fmt.Fprintln(os.Stderr, "usage: sudoku [flags] <puzzle>")
		fmt.Fprintln(os.Stderr, "       sudoku [flags] -file <corpus>")
		flag.PrintDefaults()
		os.Exit(2)
	}
}

func runOne(puzzle string, ps *store.Store) {
	start := time.Now()
	g, stats, err := solver.SolveString(puzzle)
	elapsed := time.Since(start)
	if errors.Is(err, solver.ErrBadInput) {
		log.Fatal().Err(err).Msg("invalid puzzle")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("no solution")
	}

	visualizer.NewVisualizer(g).Print()
	log.Info().
		Dur("elapsed", elapsed).
		Int("nodes", stats.Nodes).
		Int("clones", stats.Clones).
		Msg("solved")

	if *jsonOut != "" {
		p := &types.Puzzle{
			Givens:   puzzle,
			Solution: g.String(),
			Seconds:  elapsed.Seconds(),
			Source:   *source,
		}
		data, err := p.ToJSON()
		if err != nil {
			log.Fatal().Err(err).Msg("could not serialize puzzle")
		}
		if err := os.WriteFile(*jsonOut, data, 0644); err != nil {
			log.Fatal().Err(err).Msg("could not write JSON file")
		}
	}

	if ps != nil {
		uploadPuzzle(ps, puzzle, g.String(), elapsed)
	}
}

func runCorpus(ps *store.Store) {
	puzzles, err := batch.LoadFile(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("could not read corpus")
	}

	results, summary, err := batch.SolveAll(context.Background(), puzzles, *workers)
	if err != nil {
		log.Fatal().Err(err).Msg("corpus run aborted")
	}

	for _, r := range results {
		if r.Err != nil {
			log.Error().Int("puzzle", r.Index).Err(r.Err).Msg("failed")
			continue
		}
		fmt.Println(r.Solution)
		if ps != nil {
			uploadPuzzle(ps, r.Givens, r.Solution, r.Elapsed)
		}
	}
	log.Info().
		Int("puzzles", summary.Puzzles).
		Int("solved", summary.Solved).
		Int("failed", summary.Failed).
		Dur("total", summary.Total).
		Dur("slowest", summary.Slowest).
		Msg("corpus done")
}

func uploadPuzzle(ps *store.Store, givens, solution string, elapsed time.Duration) {
	p := &types.Puzzle{
		Givens:   givens,
		Solution: solution,
		Seconds:  elapsed.Seconds(),
		Source:   *source,
	}
	if _, err := ps.Upload(p); err != nil {
		log.Error().Err(err).Msg("upload failed")
	}
}

package store

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/habibrosyad/pocketbase-go-sdk"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"sudoku_solver_go/internal/types"
)

const collection = "puzzles"

// Store persists solved puzzles in a PocketBase collection.
type Store struct {
	client *pocketbase.Client
}

// New connects to a PocketBase instance using superuser credentials from
// the environment (POCKETBASE_EMAIL / POCKETBASE_PASSWORD), loading a
// .env file when one is present.
func New(baseURL string) (*Store, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found")
	}

	client := pocketbase.NewClient(baseURL,
		pocketbase.WithSuperuserEmailPassword(
			os.Getenv("POCKETBASE_EMAIL"),
			os.Getenv("POCKETBASE_PASSWORD"),
		))
	if err := client.Authorize(); err != nil {
		return nil, fmt.Errorf("authentication failed: %v", err)
	}

	s := &Store{client: client}
	// Tokens expire; re-authenticate every 30 minutes.
	go s.reauthenticate()
	return s, nil
}

func (s *Store) reauthenticate() {
	ticker := time.NewTicker(30 * time.Minute)
	for range ticker.C {
		if err := s.client.Authorize(); err != nil {
			log.Error().Err(err).Msg("re-authentication failed")
		} else {
			log.Info().Msg("re-authenticated with PocketBase")
		}
	}
}

// Upload stores a solved puzzle and returns the created record.
func (s *Store) Upload(p *types.Puzzle) (*pocketbase.ResponseCreate, error) {
	data := map[string]any{
		"givens":   p.Givens,
		"solution": p.Solution,
		"seconds":  p.Seconds,
		"source":   p.Source,
	}
	record, err := s.client.Create(collection, data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload puzzle: %v", err)
	}
	return &record, nil
}

// Get loads a puzzle by record id.
func (s *Store) Get(id string) (*types.Puzzle, error) {
	record, err := s.client.One(collection, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load puzzle %s: %v", id, err)
	}

	p := &types.Puzzle{ID: id}
	if v, ok := record["givens"].(string); ok {
		p.Givens = v
	}
	if v, ok := record["solution"].(string); ok {
		p.Solution = v
	}
	if v, ok := record["source"].(string); ok {
		p.Source = v
	}
	if v, ok := record["seconds"].(float64); ok {
		p.Seconds = v
	}
	return p, nil
}

// List pages through stored puzzles, optionally filtered by source.
func (s *Store) List(page, perPage int, source string) (*pocketbase.ResponseList[map[string]any], error) {
	var filterRules []string
	if source != "" {
		filterRules = append(filterRules, fmt.Sprintf("source = \"%s\"", source))
	}

	params := pocketbase.ParamsList{
		Page:    page,
		Size:    perPage,
		Sort:    "-created",
		Filters: strings.Join(filterRules, " && "),
	}
	result, err := s.client.List(collection, params)
	return &result, err
}

// Exists reports whether a record with the given id is already stored.
func (s *Store) Exists(id string) (bool, error) {
	_, err := s.client.One(collection, id)
	if err != nil {
		if strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

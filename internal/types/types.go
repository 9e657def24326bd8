package types

import "encoding/json"

// Puzzle is the exchange form of a sudoku instance: 81-character row-major
// strings with '.' for empty cells.
type Puzzle struct {
	ID       string  `json:"id,omitempty"`
	Givens   string  `json:"givens"`
	Solution string  `json:"solution,omitempty"`
	Seconds  float64 `json:"seconds,omitempty"`
	Source   string  `json:"source,omitempty"`
}

// ToJSON converts the puzzle to JSON bytes.
func (p *Puzzle) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// FromJSON creates a Puzzle from JSON bytes.
func FromJSON(data []byte) (*Puzzle, error) {
	var p Puzzle
	err := json.Unmarshal(data, &p)
	return &p, err
}

package solver

import "strings"

// Grid is the entire mutable puzzle state: one candidate mask per cell in
// row-major order. Decidedness is derived from the mask; there is no
// separate array of placed values.
type Grid [81]Mask

// NewGrid returns a grid with every digit still possible in every cell.
func NewGrid() *Grid {
	var g Grid
	for i := range g {
		g[i] = FullMask
	}
	return &g
}

// Clone returns an independent copy for speculative assignment. A failed
// branch is discarded by dropping the clone; the original is never touched.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// Solved reports whether every cell is decided.
func (g *Grid) Solved() bool {
	for _, m := range g {
		if m.Count() != 1 {
			return false
		}
	}
	return true
}

// Digits returns the decided digit of each cell, 0 where undecided.
func (g *Grid) Digits() [81]int {
	var out [81]int
	for i, m := range g {
		if v, ok := m.Single(); ok {
			out[i] = v
		}
	}
	return out
}

// String renders the grid as an 81-character puzzle string, '.' for
// undecided cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(81)
	for _, m := range g {
		if v, ok := m.Single(); ok {
			b.WriteByte(byte('0' + v))
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

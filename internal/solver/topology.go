package solver

import "github.com/samber/lo"

// The board topology is fixed: 27 units (9 rows, 9 columns, 9 boxes) of 9
// cells each, addressed by row-major index (row*9 + col). The tables below
// are built once at startup and shared read-only by every grid and every
// search branch.
var (
	units   [27][9]int
	unitsOf [81][3]int  // indices into units of the 3 units containing a cell
	peersOf [81][20]int // the 20 distinct other cells sharing a unit
)

func init() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			units[r][c] = r*9 + c   // row r
			units[9+r][c] = c*9 + r // column r
		}
	}
	for b := 0; b < 9; b++ {
		br, bc := b/3*3, b%3*3
		for i := 0; i < 9; i++ {
			units[18+b][i] = (br+i/3)*9 + (bc + i%3)
		}
	}

	for cell := 0; cell < 81; cell++ {
		n := 0
		for u := range units {
			if lo.Contains(units[u][:], cell) {
				unitsOf[cell][n] = u
				n++
			}
		}
		members := lo.FlatMap(unitsOf[cell][:], func(u, _ int) []int {
			return units[u][:]
		})
		peers := lo.Filter(lo.Uniq(members), func(p, _ int) bool {
			return p != cell
		})
		copy(peersOf[cell][:], peers)
	}
}

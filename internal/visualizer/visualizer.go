package visualizer

import (
	"fmt"
	"strings"

	"sudoku_solver_go/internal/solver"
)

// Visualizer handles grid visualization.
type Visualizer struct {
	grid *solver.Grid
}

func NewVisualizer(grid *solver.Grid) *Visualizer {
	return &Visualizer{grid: grid}
}

// Render draws the grid with box separators, '.' for undecided cells.
func (v *Visualizer) Render() string {
	var b strings.Builder
	digits := v.grid.Digits()

	writeBorder(&b)
	for r := 0; r < 9; r++ {
		b.WriteString("│ ")
		for c := 0; c < 9; c++ {
			if d := digits[r*9+c]; d == 0 {
				b.WriteString(". ")
			} else {
				fmt.Fprintf(&b, "%d ", d)
			}
			if (c+1)%3 == 0 && c < 8 {
				b.WriteString("│ ")
			}
		}
		b.WriteString("│\n")
		if (r+1)%3 == 0 && r < 8 {
			writeBorder(&b)
		}
	}
	writeBorder(&b)
	return b.String()
}

// RenderCandidates draws every cell's remaining candidates, which is
// useful when inspecting a partially propagated grid.
func (v *Visualizer) RenderCandidates() string {
	var cells [81]string
	width := 0
	for i := range v.grid {
		var sb strings.Builder
		for _, d := range v.grid[i].Digits() {
			sb.WriteByte(byte('0' + d))
		}
		cells[i] = sb.String()
		if len(cells[i]) > width {
			width = len(cells[i])
		}
	}

	var b strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fmt.Fprintf(&b, "%-*s ", width, cells[r*9+c])
			if (c+1)%3 == 0 && c < 8 {
				b.WriteString("| ")
			}
		}
		b.WriteString("\n")
		if (r+1)%3 == 0 && r < 8 {
			b.WriteString(strings.Repeat("-", (width+1)*9+4) + "\n")
		}
	}
	return b.String()
}

func (v *Visualizer) Print() {
	fmt.Print(v.Render())
}

func writeBorder(b *strings.Builder) {
	b.WriteString("├")
	for box := 0; box < 3; box++ {
		b.WriteString(strings.Repeat("─", 7))
		if box < 2 {
			b.WriteString("┼")
		}
	}
	b.WriteString("┤\n")
}

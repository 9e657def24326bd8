package solver

import "math/bits"

// Mask is the set of digits 1-9 still possible for a cell, one bit per
// digit: bit v-1 is set when digit v is a candidate. A zero mask means the
// cell has no candidates left, which marks a contradiction.
type Mask uint16

// FullMask has all nine digits possible.
const FullMask Mask = 1<<9 - 1

func maskOf(digit int) Mask { return 1 << (digit - 1) }

// Has reports whether digit is still a candidate.
func (m Mask) Has(digit int) bool { return m&maskOf(digit) != 0 }

// Remove clears digit from the mask.
func (m Mask) Remove(digit int) Mask { return m &^ maskOf(digit) }

// Count returns the number of candidate digits.
func (m Mask) Count() int { return bits.OnesCount16(uint16(m)) }

// Single returns the remaining digit of a decided cell.
func (m Mask) Single() (int, bool) {
	if m != 0 && m&(m-1) == 0 {
		return bits.TrailingZeros16(uint16(m)) + 1, true
	}
	return 0, false
}

// Digits lists the candidate digits in ascending order.
func (m Mask) Digits() []int {
	ds := make([]int, 0, m.Count())
	for v := 1; v <= 9; v++ {
		if m.Has(v) {
			ds = append(ds, v)
		}
	}
	return ds
}

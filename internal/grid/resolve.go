package grid

import (
	"github.com/listenupapp/luckysign/internal/color"
	"github.com/listenupapp/luckysign/internal/digits"
)

// Resolve assigns each cell the main colour when its value is one of the
// sign digits, and the background colour otherwise. The result has the
// same shape as g.
func Resolve(g Grid, sign digits.Set, colors color.AutoColors) [][]string {
	cells := make([][]string, len(g))
	for i, row := range g {
		out := make([]string, len(row))
		for j, v := range row {
			if sign.Contains(v) {
				out[j] = colors.Main
			} else {
				out[j] = colors.Background
			}
		}
		cells[i] = out
	}
	return cells
}

// CountSigned returns how many cells hold a sign digit.
func CountSigned(g Grid, sign digits.Set) int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if sign.Contains(v) {
				n++
			}
		}
	}
	return n
}

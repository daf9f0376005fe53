// Package grid builds the mirrored multiplication table a sign is painted on
// and decides which colour each cell receives.
package grid

import (
	"slices"

	domainerrors "github.com/listenupapp/luckysign/internal/errors"
)

const (
	// BaseSide is the side of the unmirrored table.
	BaseSide = 9

	// MaxMirrors is the largest supported mirror count per axis.
	MaxMirrors = 2
)

// Grid is a square table of digits 0-9, indexed [row][column].
type Grid [][]int

// Side returns the number of rows.
func (g Grid) Side() int {
	return len(g)
}

// Base returns a fresh 9x9 table where cell (i, j) is ((i+1)*(j+1)) mod 10.
func Base() Grid {
	base := make(Grid, BaseSide)
	for i := range base {
		row := make([]int, BaseSide)
		for j := range row {
			row[j] = ((i + 1) * (j + 1)) % 10
		}
		base[i] = row
	}
	return base
}

// Generate builds the base table and mirrors it mirrorX times horizontally,
// then mirrorY times vertically. Each horizontal pass appends every row's
// reverse to itself; each vertical pass appends the reversed row order below.
// Counts outside 0..2 fail with ErrUnsupportedSize.
func Generate(mirrorX, mirrorY int) (Grid, error) {
	if mirrorX < 0 || mirrorX > MaxMirrors || mirrorY < 0 || mirrorY > MaxMirrors {
		return nil, domainerrors.UnsupportedSizef("unsupported mirror counts %d,%d", mirrorX, mirrorY)
	}

	g := Base()
	for range mirrorX {
		g = mirrorHorizontal(g)
	}
	for range mirrorY {
		g = mirrorVertical(g)
	}
	return g, nil
}

// ForSize builds the grid for a size mode.
func ForSize(size Size) (Grid, error) {
	times, err := size.MirrorTimes()
	if err != nil {
		return nil, err
	}
	return Generate(times, times)
}

// mirrorHorizontal returns a new grid where each row is followed by its reverse.
func mirrorHorizontal(g Grid) Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		wide := make([]int, 0, 2*len(row))
		wide = append(wide, row...)
		for j := len(row) - 1; j >= 0; j-- {
			wide = append(wide, row[j])
		}
		out[i] = wide
	}
	return out
}

// mirrorVertical returns a new grid with the rows followed by copies of the
// same rows in reverse order.
func mirrorVertical(g Grid) Grid {
	out := make(Grid, 0, 2*len(g))
	for _, row := range g {
		out = append(out, slices.Clone(row))
	}
	for i := len(g) - 1; i >= 0; i-- {
		out = append(out, slices.Clone(g[i]))
	}
	return out
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/listenupapp/luckysign/internal/color"
)

func TestColorMode(t *testing.T) {
	assert.Equal(t, "auto", ColorModeAuto.String())
	assert.Equal(t, "custom", ColorModeCustom.String())
	assert.Equal(t, "unknown", ColorMode(7).String())

	assert.True(t, ColorModeAuto.Valid())
	assert.True(t, ColorModeCustom.Valid())
	assert.False(t, ColorMode(-1).Valid())
}

func TestSign_SignedCells(t *testing.T) {
	s := &Sign{
		Colors: color.AutoColors{Main: "#388e3c", Background: "#f57c00"},
		Digits: []int{0, 2},
		Grid: [][]int{
			{0, 1},
			{1, 2},
		},
	}
	assert.Equal(t, 2, s.SignedCells())

	// Identical custom colours still count by digit.
	s.Colors = color.AutoColors{Main: "#000000", Background: "#000000"}
	assert.Equal(t, 2, s.SignedCells())

	assert.Equal(t, 0, (&Sign{}).SignedCells())
}

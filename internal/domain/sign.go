package domain

import (
	"time"

	"github.com/listenupapp/luckysign/internal/color"
	"github.com/listenupapp/luckysign/internal/digits"
	"github.com/listenupapp/luckysign/internal/grid"
)

// ColorMode selects where a sign's colours come from.
type ColorMode int

const (
	// ColorModeAuto derives colours from the birth date and name.
	ColorModeAuto ColorMode = 0
	// ColorModeCustom uses colours chosen by the caller.
	ColorModeCustom ColorMode = 1
)

// String returns "auto" or "custom".
func (m ColorMode) String() string {
	switch m {
	case ColorModeAuto:
		return "auto"
	case ColorModeCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Valid reports whether m is a known mode.
func (m ColorMode) Valid() bool {
	return m == ColorModeAuto || m == ColorModeCustom
}

// ColorMethodCustom marks colours that were supplied rather than derived.
const ColorMethodCustom color.Method = "custom"

// Sign is a drawn lucky sign.
type Sign struct {
	ID        string           `json:"id"`
	Name      string           `json:"name,omitempty"`
	BirthDate BirthDate        `json:"birth_date"`
	Size      int              `json:"size"`
	SizeLabel string           `json:"size_label"`
	Side      int              `json:"side"`
	Mode      ColorMode        `json:"color_mode"`
	Method    color.Method     `json:"method"`
	Colors    color.AutoColors `json:"colors"`
	Digits    []int            `json:"digits"`
	Grid      [][]int          `json:"grid"`
	Cells     [][]string       `json:"cells"`
	CreatedAt time.Time        `json:"created_at"`
}

// SignedCells counts cells holding one of the sign digits.
func (s *Sign) SignedCells() int {
	return grid.CountSigned(s.Grid, digits.Of(s.Digits...))
}

// ColorReport explains how a pair of auto colours was derived.
type ColorReport struct {
	BirthDate BirthDate        `json:"birth_date"`
	Letters   string           `json:"letters,omitempty"`
	Method    color.Method     `json:"method"`
	Colors    color.AutoColors `json:"colors"`
	// DateDigit and NameDigit are set for the numerology method only.
	DateDigit int `json:"date_digit,omitempty"`
	NameDigit int `json:"name_digit,omitempty"`
}

package grid

import (
	"strconv"
	"strings"

	domainerrors "github.com/listenupapp/luckysign/internal/errors"
)

// Size selects how many times the base table is mirrored per axis.
// The numeric values are the size codes accepted by the API and CLI.
type Size int

// Supported sizes.
const (
	Size1x1 Size = 0 // 9x9, no mirroring
	Size2x2 Size = 1 // 18x18
	Size4x4 Size = 2 // 36x36
)

// Sizes lists every supported size in ascending order.
func Sizes() []Size {
	return []Size{Size1x1, Size2x2, Size4x4}
}

// Valid reports whether s is one of the supported sizes.
func (s Size) Valid() bool {
	return s >= Size1x1 && s <= Size4x4
}

// MirrorTimes returns the mirror count applied to each axis.
func (s Size) MirrorTimes() (int, error) {
	switch s {
	case Size1x1:
		return 0, nil
	case Size2x2:
		return 1, nil
	case Size4x4:
		return 2, nil
	default:
		return 0, domainerrors.UnsupportedSizef("unsupported grid size %d", int(s))
	}
}

// Side returns the side length of the grid this size produces, or 0 if unsupported.
func (s Size) Side() int {
	times, err := s.MirrorTimes()
	if err != nil {
		return 0
	}
	return BaseSide << times
}

// String returns the label form ("1x1", "2x2", "4x4").
func (s Size) String() string {
	switch s {
	case Size1x1:
		return "1x1"
	case Size2x2:
		return "2x2"
	case Size4x4:
		return "4x4"
	default:
		return "Size(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseSize accepts either a size code ("0", "1", "2") or a label ("2x2").
func ParseSize(v string) (Size, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, s := range Sizes() {
		if v == s.String() || v == strconv.Itoa(int(s)) {
			return s, nil
		}
	}
	return 0, domainerrors.UnsupportedSizef("unsupported grid size %q", v)
}

package color

// palette maps reduced digits 1-9 to their colours. Index 0 is unused.
//
//nolint:gochecknoglobals // Static lookup table
var palette = [10]string{
	"",
	"#d32f2f",
	"#f57c00",
	"#ffe04a",
	"#388e3c",
	"#0288d1",
	"#3949ab",
	"#a23bbc",
	"#e8508f",
	"#d8b848",
}

// PaletteEntry pairs a digit with its palette colour.
type PaletteEntry struct {
	Digit int    `json:"digit"`
	Hex   string `json:"hex"`
}

// PaletteColor returns the palette colour for digit d (1-9).
func PaletteColor(d int) (string, bool) {
	if d < 1 || d > 9 {
		return "", false
	}
	return palette[d], true
}

// Palette returns all nine entries in digit order.
func Palette() []PaletteEntry {
	entries := make([]PaletteEntry, 0, 9)
	for d := 1; d <= 9; d++ {
		entries = append(entries, PaletteEntry{Digit: d, Hex: palette[d]})
	}
	return entries
}

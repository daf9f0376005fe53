package color

// AutoColors is the pair of colours painted onto a sign.
type AutoColors struct {
	Main       string `json:"main"`
	Background string `json:"background"`
}

// Method identifies which derivation produced a pair of colours.
type Method string

// Derivation methods.
const (
	MethodSeasonal   Method = "seasonal"
	MethodNumerology Method = "numerology"
)

// Derivation is the result of Derive.
type Derivation struct {
	Colors AutoColors
	Method Method
	// DateDigit and NameDigit are only set for MethodNumerology.
	DateDigit int
	NameDigit int
}

// Derive picks the derivation by whether any name letters are present:
// numerology when letters is non-empty, seasonal otherwise.
func Derive(day, month, year int, letters string) (Derivation, error) {
	if letters == "" {
		return Derivation{
			Colors: Seasonal(day, month, year),
			Method: MethodSeasonal,
		}, nil
	}

	return numerology(day, month, year, letters)
}

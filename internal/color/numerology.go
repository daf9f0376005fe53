package color

import (
	"strconv"

	"github.com/listenupapp/luckysign/internal/digits"
	domainerrors "github.com/listenupapp/luckysign/internal/errors"
)

// collisionShift is how far main and background lightness move apart when
// both digits land on the same palette colour.
const collisionShift = 10

// numerology derives palette colours from the reduced date digit (main)
// and the reduced name digit (background). letters must be normalised name
// letters (a-z only); an empty value is rejected with ErrInvalidNameInput.
func numerology(day, month, year int, letters string) (Derivation, error) {
	dateDigit, nameDigit, err := NumerologyDigits(day, month, year, letters)
	if err != nil {
		return Derivation{}, err
	}

	d := Derivation{Method: MethodNumerology, DateDigit: dateDigit, NameDigit: nameDigit}
	main, _ := PaletteColor(dateDigit)
	background, _ := PaletteColor(nameDigit)

	if dateDigit != nameDigit {
		d.Colors = AutoColors{Main: main, Background: background}
		return d, nil
	}

	background, err = ShiftLightness(background, collisionShift)
	if err != nil {
		return Derivation{}, err
	}
	main, err = ShiftLightness(main, -collisionShift)
	if err != nil {
		return Derivation{}, err
	}

	d.Colors = AutoColors{Main: main, Background: background}
	return d, nil
}

// NumerologyDigits returns the reduced date digit and the reduced name digit.
func NumerologyDigits(day, month, year int, letters string) (dateDigit, nameDigit int, err error) {
	nameSum, err := nameScore(letters)
	if err != nil {
		return 0, 0, err
	}

	date := strconv.Itoa(day) + strconv.Itoa(month) + strconv.Itoa(year)
	dateDigit = digits.Reduce(digits.SumString(date))
	nameDigit = digits.Reduce(nameSum)

	// A date made only of zeros would reduce to 0, which has no colour.
	if dateDigit == 0 {
		return 0, 0, domainerrors.InvalidDatef("date %d.%d.%d has no digit value", day, month, year)
	}

	return dateDigit, nameDigit, nil
}

// nameScore sums (alphabet index mod 9) + 1 over the letters.
func nameScore(letters string) (int, error) {
	if letters == "" {
		return 0, domainerrors.ErrInvalidNameInput
	}

	sum := 0
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if c < 'a' || c > 'z' {
			return 0, domainerrors.ErrInvalidNameInput.WithMessage("name letters must be normalised to a-z")
		}
		sum += int(c-'a')%9 + 1
	}
	return sum, nil
}

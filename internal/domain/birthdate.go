package domain

import (
	"strings"
	"time"

	domainerrors "github.com/listenupapp/luckysign/internal/errors"
)

// Accepted birth date layouts. The dotted form keeps its trailing dot.
const (
	BirthDateLayout    = "02.01.2006."
	BirthDateISOLayout = "2006-01-02"

	// birthDateLooseLayout also accepts single digit days and months.
	birthDateLooseLayout = "2.1.2006."
)

// BirthDate is a calendar date of birth. Raw keeps the text the caller
// supplied; String gives the zero-padded dotted form sign digits are read from.
type BirthDate struct {
	Day   int    `json:"day"`
	Month int    `json:"month"`
	Year  int    `json:"year"`
	Raw   string `json:"raw"`
}

// ParseBirthDate accepts "dd.MM.yyyy." (the trailing dot is optional) or
// "yyyy-MM-dd". Dates that do not exist on the calendar, such as 31.02.,
// fail with ErrInvalidDate.
func ParseBirthDate(s string) (BirthDate, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return BirthDate{}, domainerrors.ErrInvalidDate.WithMessage("birth date is required")
	}

	layouts := []string{birthDateLooseLayout, BirthDateISOLayout}
	if strings.Count(raw, ".") == 2 && !strings.HasSuffix(raw, ".") {
		raw += "."
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if t.Year() < 1 {
			break
		}
		return BirthDate{
			Day:   t.Day(),
			Month: int(t.Month()),
			Year:  t.Year(),
			Raw:   raw,
		}, nil
	}

	return BirthDate{}, domainerrors.InvalidDatef("invalid birth date %q, expected dd.mm.yyyy. or yyyy-mm-dd", s)
}

// String formats the date in the dotted layout.
func (b BirthDate) String() string {
	return time.Date(b.Year, time.Month(b.Month), b.Day, 0, 0, 0, 0, time.UTC).Format(BirthDateLayout)
}


package color

import "math"

// monthHues anchors the hue of the first day of each month, January first:
// winter blues, spring greens, warm summer, autumn oranges, back to winter.
//
//nolint:gochecknoglobals // Static lookup table
var monthHues = [12]float64{210, 190, 160, 130, 100, 75, 55, 40, 25, 15, 330, 260}

const (
	february = 2
	may      = 5
	june     = 6
	august   = 8
)

// Seasonal derives the sign colours from the date alone.
func Seasonal(day, month, year int) AutoColors {
	main, background := SeasonalHSL(day, month, year)
	return AutoColors{
		Main:       main.Hex(),
		Background: background.Hex(),
	}
}

// SeasonalHSL returns the unconverted main and background colours.
func SeasonalHSL(day, month, year int) (main, background HSL) {
	main = seasonalMain(day, month, year)
	background = seasonalBackground(main, month)
	return main, background
}

// seasonalMain interpolates the hue between this month's anchor and the
// next, always along the shorter arc.
func seasonalMain(day, month, year int) HSL {
	idx := int(Clamp(float64(month-1), 0, 11))
	next := (idx + 1) % 12
	frac := float64(day-1) / 31

	from, to := monthHues[idx], monthHues[next]
	diff := to - from
	if diff > 180 {
		diff -= 360
	} else if diff < -180 {
		diff += 360
	}

	hue := math.Mod(from+diff*frac+360, 360)

	sat := 80 + (float64(day)/31)*15
	if month >= june && month <= august {
		sat += 5
	}

	yy := year % 100
	if yy < 0 {
		yy += 100
	}
	light := 60 + (float64(yy)/99)*7

	return HSL{H: hue, S: sat, L: light}
}

// seasonalBackground keeps the main hue and pushes saturation and lightness
// towards a pale wash.
func seasonalBackground(main HSL, month int) HSL {
	sat := Clamp(main.S*0.7+10, 40, 90)

	boost := 25.0
	if main.L < 60 {
		boost = 35
	}
	light := Clamp(main.L+boost, 70, 95)

	// Applied after the clamp, so these months can reach 99.
	if month == february || (month >= may && month <= august) {
		light += 4
	}

	return HSL{H: main.H, S: sat, L: light}
}

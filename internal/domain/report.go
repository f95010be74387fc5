package domain

import "fmt"

// StyleClass is the presentation-intent tag derived from the condition code
// and, for clear skies, the comparison temperature. It carries no numeric
// data; the render package maps it to an actual terminal treatment.
type StyleClass int

const (
	StyleOther StyleClass = iota
	StyleClearWarm
	StyleClearCold
	StyleOvercast
	StyleRain
	StyleWintry
	StyleStorm
)

// String returns a stable lowercase name, used in debug logs.
func (s StyleClass) String() string {
	switch s {
	case StyleClearWarm:
		return "clear-warm"
	case StyleClearCold:
		return "clear-cold"
	case StyleOvercast:
		return "overcast"
	case StyleRain:
		return "rain"
	case StyleWintry:
		return "wintry"
	case StyleStorm:
		return "storm"
	default:
		return "other"
	}
}

// Line is one row of the composed report. Every line of a report carries the
// report's StyleClass so the renderer applies one uniform treatment.
type Line struct {
	Text  string
	Style StyleClass
}

// clearWarmThresholdF splits clear conditions into warm and cold. The
// boundary value itself classifies as warm.
const clearWarmThresholdF = 65.0

// CelsiusToFahrenheit converts degrees Celsius to Fahrenheit. The same
// conversion serves both the displayed imperial temperature and the internal
// comparison temperature, so the two can never drift apart.
func CelsiusToFahrenheit(c float64) float64 {
	return c*1.8 + 32
}

// Classify derives the StyleClass for a condition code. comparisonF is the
// Fahrenheit-equivalent temperature and only matters for the clear codes;
// it is computed from Celsius regardless of the user's display units so the
// warm/cold split does not depend on the units flag.
func Classify(code int, comparisonF float64) StyleClass {
	switch code {
	case 1000, 1100:
		if comparisonF >= clearWarmThresholdF {
			return StyleClearWarm
		}
		return StyleClearCold
	case 1101, 1102, 1001, 2000, 2100:
		return StyleOvercast
	case 4000, 4001, 4200, 4201:
		return StyleRain
	case 5000, 5001, 5100, 5101, 6000, 6001, 6200, 6201, 7000, 7101, 7102:
		return StyleWintry
	case 8000:
		return StyleStorm
	default:
		return StyleOther
	}
}

// TempEmoji picks the temperature glyph from the Fahrenheit-equivalent
// value. The bands are contiguous and exhaustive: ≤32, (32,60], (60,85],
// and >85.
func TempEmoji(comparisonF float64) string {
	switch {
	case comparisonF <= 32:
		return "🥶"
	case comparisonF <= 60:
		return "😬"
	case comparisonF <= 85:
		return "😀"
	default:
		return "🥵"
	}
}

// ComposeReport turns an observation and a units selection into the ordered
// report lines. Optional measurements that are absent produce no line at
// all. It fails with an error wrapping ErrMissingField when the observation
// lacks a condition code or temperature; no partial report is emitted.
func ComposeReport(obs Observation, units Units) ([]Line, error) {
	if err := obs.Validate(); err != nil {
		return nil, err
	}

	code := *obs.ConditionCode
	comparisonF := CelsiusToFahrenheit(*obs.Temperature)
	style := Classify(code, comparisonF)
	suffix := units.TempSuffix()

	lines := make([]Line, 0, 8)
	add := func(text string) {
		lines = append(lines, Line{Text: text, Style: style})
	}

	add(fmt.Sprintf("%s %s", obs.LocationName, TempEmoji(comparisonF)))
	add(fmt.Sprintf("%s %s", Describe(code), ConditionEmoji(code)))
	add(fmt.Sprintf("Temperature: %.0f%s", displayTemp(*obs.Temperature, units), suffix))

	if obs.TemperatureApparent != nil && *obs.TemperatureApparent != *obs.Temperature {
		add(fmt.Sprintf("Real feel: %.0f%s", displayTemp(*obs.TemperatureApparent, units), suffix))
	}
	if obs.WindSpeed != nil {
		// Wind speed is reported in m/s for both unit systems.
		add(fmt.Sprintf("Wind speed: %.0f m/s", *obs.WindSpeed))
	}
	if obs.PrecipitationProbability != nil {
		add(fmt.Sprintf("Precipitation: %.0f%%", *obs.PrecipitationProbability))
	}
	if obs.Humidity != nil {
		add(fmt.Sprintf("Humidity: %.0f%%", *obs.Humidity))
	}
	if obs.UVIndex != nil {
		add(fmt.Sprintf("UV index: %.0f", *obs.UVIndex))
	}

	return lines, nil
}

// displayTemp converts a Celsius value into the displayed unit system.
func displayTemp(celsius float64, units Units) float64 {
	if units == UnitsMetric {
		return celsius
	}
	return CelsiusToFahrenheit(celsius)
}

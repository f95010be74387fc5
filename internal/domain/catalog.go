package domain

// The condition catalog maps Tomorrow.io weather codes to renderable text
// and pictograms. It is plain data, kept apart from the threshold logic in
// report.go so new codes can be added without touching classification.

// unknownCode is the catalog fallback entry. Lookups never fail: an
// unrecognized code degrades to the unknown description and glyph so the
// composer always has renderable text.
const unknownCode = 0

// conditionDescriptions is the fixed code → description table.
var conditionDescriptions = map[int]string{
	unknownCode: "unknown",
	1000:        "clear",
	1100:        "mostly clear",
	1101:        "partly cloudy",
	1102:        "mostly cloudy",
	1001:        "cloudy",
	2000:        "foggy",
	2100:        "lightly foggy",
	4000:        "drizzling",
	4001:        "raining",
	4200:        "light raining",
	4201:        "heavy raining",
	5000:        "snowing",
	5001:        "flurrying",
	5100:        "light snowing",
	5101:        "heavy snowing",
	6000:        "freezing drizzle",
	6001:        "freezing raining",
	6200:        "light freezing raining",
	6201:        "heavy freezing raining",
	7000:        "ice pelleting",
	7101:        "heavy ice pelleting",
	7102:        "light ice pelleting",
	8000:        "thunderstorming",
}

// conditionGlyphs maps the same codes into ten pictograms grouped by
// condition family: clear sun, partly cloudy, mostly cloudy, overcast, fog,
// rain, snow, wintry mix, storm, and the fallback.
var conditionGlyphs = map[int]string{
	unknownCode: "🤷",
	1000:        "☀️",
	1100:        "☀️",
	1101:        "🌤️",
	1102:        "⛅",
	1001:        "☁️",
	2000:        "🌫️",
	2100:        "🌫️",
	4000:        "🌧️",
	4001:        "🌧️",
	4200:        "🌧️",
	4201:        "🌧️",
	5000:        "❄️",
	5001:        "❄️",
	5100:        "❄️",
	5101:        "❄️",
	6000:        "🌨️",
	6001:        "🌨️",
	6200:        "🌨️",
	6201:        "🌨️",
	7000:        "🌨️",
	7101:        "🌨️",
	7102:        "🌨️",
	8000:        "⛈️",
}

// Describe returns the human-readable description for a condition code,
// or the unknown fallback for codes outside the catalog.
func Describe(code int) string {
	if d, ok := conditionDescriptions[code]; ok {
		return d
	}
	return conditionDescriptions[unknownCode]
}

// ConditionEmoji returns the family pictogram for a condition code,
// or the fallback glyph for codes outside the catalog.
func ConditionEmoji(code int) string {
	if g, ok := conditionGlyphs[code]; ok {
		return g
	}
	return conditionGlyphs[unknownCode]
}

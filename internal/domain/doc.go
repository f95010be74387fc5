// Package domain models a single Tomorrow.io weather observation and the
// logic that turns it into a terminal report.
//
// # Data Source
//
// Observations come from the Tomorrow.io realtime endpoint
// (https://api.tomorrow.io/v4/weather/realtime). The API reports
// temperatures in Celsius and wind speed in meters per second; all unit
// conversion for display happens here, never upstream.
//
// # Condition Codes
//
// Tomorrow.io identifies discrete sky/precipitation states with integer
// codes, grouped by thousands:
//
//	1xxx  clear through cloudy
//	2xxx  fog
//	4xxx  drizzle and rain
//	5xxx  snow
//	6xxx  freezing drizzle and freezing rain
//	7xxx  ice pellets
//	8000  thunderstorm
//
// Code 0 is the catalog's own fallback for anything unrecognized. Catalog
// lookups never fail; an unknown code renders as "unknown" with the
// fallback glyph. A missing code is different: that violates the input
// contract and aborts report composition (see [ErrMissingField]).
//
// # Classification
//
// A report gets exactly one [StyleClass], derived from the condition code.
// Clear codes split on a comparison temperature that is always computed in
// Fahrenheit (F = C*1.8 + 32) so the warm/cold boundary at 65°F does not
// move with the user's display units. The boundary is inclusive on the warm
// side: 65°F exactly is warm.
//
// Temperature glyphs use the same Fahrenheit-equivalent value with bands at
// 32, 60, and 85, each inclusive of its upper endpoint.
//
// # Optional Measurements
//
// Every measurement except the condition code and temperature is a pointer;
// nil means the provider omitted the field and the corresponding report
// line is dropped entirely. Zero is never used as an absence marker because
// 0% humidity, 0% precipitation chance, and UV index 0 are all real values.
package domain

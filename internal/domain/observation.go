package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Observation is one weather snapshot for a location, as decoded from the
// provider payload. ConditionCode and Temperature are required; every other
// measurement is optional and a nil pointer means the provider omitted it.
// Zero is a legitimate value for percentages and wind speed, so absence is
// never encoded as zero.
type Observation struct {
	LocationName             string
	ConditionCode            *int     `validate:"required"`
	Temperature              *float64 `validate:"required"` // degrees Celsius
	TemperatureApparent      *float64 // degrees Celsius
	Humidity                 *float64 // percent, [0,100]
	PrecipitationProbability *float64 // percent, [0,100]
	WindSpeed                *float64 // meters/second
	UVIndex                  *float64

	// ObservedAt is the provider's observation timestamp. Informational
	// only; a zero value means the payload carried none.
	ObservedAt time.Time
}

// ErrMissingField reports an observation that violates the input contract:
// a required field (condition code or temperature) absent from the payload.
// No report can be composed from such an observation.
var ErrMissingField = errors.New("missing required field")

var validate = validator.New()

// Validate checks the required-field contract. The returned error wraps
// ErrMissingField and names the first absent field.
func (o Observation) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, verrs[0].Field())
	}
	return err
}

// Units selects the measurement system used for displayed values.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// ParseUnits maps a units string to a Units value. Only the exact string
// "metric" selects metric; every other value, including the empty string,
// falls back to imperial. The silent fallback mirrors the long-standing CLI
// behavior and is kept for compatibility rather than hardened into an error.
func ParseUnits(s string) Units {
	if s == string(UnitsMetric) {
		return UnitsMetric
	}
	return UnitsImperial
}

// TempSuffix returns the degree suffix printed after temperatures.
func (u Units) TempSuffix() string {
	if u == UnitsMetric {
		return "°C"
	}
	return "°F"
}

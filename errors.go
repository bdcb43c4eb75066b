package orbitmap

import (
	"fmt"
	"math"
)

// InvalidInputError is returned when an orbit input is outside the domain
// where the geometry is defined (e.g. e >= 1 or a <= 0).
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	if math.IsNaN(e.Value) {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s=%g: %s", e.Field, e.Value, e.Reason)
}

func invalid(field string, value float64, reason string) error {
	return &InvalidInputError{Field: field, Value: value, Reason: reason}
}

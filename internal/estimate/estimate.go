// Package estimate implements the construction-estimation engine: one
// pure calculator per trade, mapping a structured input record to a
// structured result record via deterministic arithmetic.
//
// Calculators hold no state and perform no I/O. Invalid numeric input
// is rejected with a typed error instead of being coerced to zero, so
// a malformed request can never produce a believable zero-cost
// estimate.
package estimate

import (
	"fmt"
	"math"
)

// Unit conversion constants shared across calculators.
const (
	cubicFeetPerCubicYard   = 27
	cubicInchesPerCubicFoot = 1728
	gallonsPerCubicFoot     = 7.48
)

// InvalidNumberError reports a numeric input field that is missing,
// non-finite or outside its allowed range.
type InvalidNumberError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Field, e.Reason)
}

// requirePositive validates that v is a finite number greater than zero.
func requirePositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidNumberError{Field: field, Value: v, Reason: "must be a number"}
	}
	if v <= 0 {
		return &InvalidNumberError{Field: field, Value: v, Reason: "must be greater than zero"}
	}
	return nil
}

// requireNonNegative validates that v is a finite number >= 0.
func requireNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidNumberError{Field: field, Value: v, Reason: "must be a number"}
	}
	if v < 0 {
		return &InvalidNumberError{Field: field, Value: v, Reason: "must not be negative"}
	}
	return nil
}

// requireFinite validates that v is a finite number.
func requireFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidNumberError{Field: field, Value: v, Reason: "must be a number"}
	}
	return nil
}

// withWastage applies a percentage buffer to a raw quantity.
func withWastage(quantity, wastagePct float64) float64 {
	return quantity * (1 + wastagePct/100)
}

// degrees converts radians to degrees.
func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

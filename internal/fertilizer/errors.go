package fertilizer

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCategory    = errors.New("unknown category")
	ErrOutOfRange         = errors.New("value out of range")
	ErrModelUnavailable   = errors.New("model unavailable")
	ErrInternalPrediction = errors.New("internal prediction error")
)

// CategoryError reports a categorical input that is absent from its table.
type CategoryError struct {
	Kind  string
	Value string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("Invalid %s: '%s'", e.Kind, e.Value)
}

func (e *CategoryError) Unwrap() error { return ErrUnknownCategory }

// RangeError reports a numeric input outside its closed bound.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("Invalid %s value: %v. Must be between %v and %v.", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

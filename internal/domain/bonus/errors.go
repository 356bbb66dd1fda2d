package bonus

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel error kinds for this package. Concrete errors are *RangeError and
// *TypeError; both match these sentinels through errors.Is.
var (
	ErrOutOfRange   = errors.New("value out of range")
	ErrTooSmall     = errors.New("is too small")
	ErrTooBig       = errors.New("is too big")
	ErrTypeMismatch = errors.New("incorrect type for value")
)

// Violation tells which side of the allowed range a value fell on.
type Violation int

// Range violation kinds.
const (
	TooSmall Violation = iota + 1
	TooBig
	// NotANumber is reported for NaN ratings, which compare false against
	// both bounds.
	NotANumber
)

func (v Violation) String() string {
	switch v {
	case TooSmall:
		return "too_small"
	case TooBig:
		return "too_big"
	case NotANumber:
		return "not_a_number"
	default:
		return "unknown"
	}
}

// RangeError reports an input outside its closed [Min, Max] domain. Value,
// Min and Max keep the field's own numeric type: int for salary and level,
// float64 for rating.
type RangeError struct {
	Field string
	Value any
	Min   any
	Max   any
	Kind  Violation
}

func (e *RangeError) Error() string {
	var what string
	switch e.Kind {
	case TooSmall:
		what = ErrTooSmall.Error()
	case TooBig:
		what = ErrTooBig.Error()
	default:
		what = "is not a number"
	}
	return fmt.Sprintf("%s %s %s (allowed %s..%s)",
		e.Field, formatNumber(e.Value), what, formatNumber(e.Min), formatNumber(e.Max))
}

// Is lets errors.Is match the generic and the side-specific sentinels.
func (e *RangeError) Is(target error) bool {
	switch target {
	case ErrOutOfRange:
		return true
	case ErrTooSmall:
		return e.Kind == TooSmall
	case ErrTooBig:
		return e.Kind == TooBig
	}
	return false
}

// TypeError reports a dynamically typed input whose Go type is not the one
// the field requires.
type TypeError struct {
	Field    string
	Expected string
	Got      string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %s. Expected %s, got %s", e.Field, ErrTypeMismatch, e.Expected, e.Got)
}

// Is matches ErrTypeMismatch.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func formatNumber(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

package convert

import "errors"

// ErrUnsupportedUnit is returned when a conversion strategy receives a
// unit name outside its fixed set. This is a hard error, never a
// silent fallback.
var ErrUnsupportedUnit = errors.New("unsupported unit for conversion strategy")

// ErrNonFiniteResult is returned when a conversion yields NaN or an
// infinity, such as a zero value into a reciprocal fuel economy
// formula.
var ErrNonFiniteResult = errors.New("conversion result is not a finite number")

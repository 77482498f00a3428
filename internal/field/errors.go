package field

import "errors"

// Domain errors for animator construction.
var (
	// ErrNoSurface indicates the animator was built without a display surface.
	ErrNoSurface = errors.New("field: display surface is required")

	// ErrNoClock indicates the animator was built without a frame clock.
	ErrNoClock = errors.New("field: frame clock is required")

	// ErrInvalidParams indicates a parameter value outside its valid range.
	ErrInvalidParams = errors.New("field: parameter out of valid bounds")
)

// ParamError wraps ErrInvalidParams with the offending parameter.
type ParamError struct {
	Name  string
	Value float64
}

func (e *ParamError) Error() string {
	return ErrInvalidParams.Error() + ": " + e.Name
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParams
}

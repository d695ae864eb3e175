package gesture

import "errors"

// ErrCapabilityUnavailable is returned by Bind when the surface reports no
// touch support. Callers are expected to fall back to pointer input.
var ErrCapabilityUnavailable = errors.New("gesture: touch input unavailable")

// BindingError reports why a surface could not be bound. No listener is
// attached when Bind returns one.
type BindingError struct {
	Reason string
	Err    error
}

func (e *BindingError) Error() string {
	if e.Err != nil {
		return "gesture: bind: " + e.Reason + ": " + e.Err.Error()
	}
	return "gesture: bind: " + e.Reason
}

func (e *BindingError) Unwrap() error { return e.Err }

package deferred

import "fmt"

// SelfResolutionError is the rejection reason of a Deferred that was resolved
// with itself. It is never thrown to the caller; the cycle only rejects the
// Deferred it was detected on.
type SelfResolutionError struct{}

func (e *SelfResolutionError) Error() string {
	return "deferred: cannot resolve a deferred with itself"
}

// PanicError wraps a non-error panic value recovered from a setup function, a
// chain handler, or a foreign Thenable's Subscribe.
type PanicError struct {
	v interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("deferred: recovered panic: %v", e.v)
}

// V returns the original panic value.
func (e *PanicError) V() interface{} {
	return e.v
}

func recovered(v interface{}) error {
	if err, ok := v.(error); ok {
		return err
	}

	return &PanicError{v: v}
}

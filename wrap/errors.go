package wrap

import (
	"errors"
	"fmt"
)

// ClassificationError reports a wrap target that is neither a callable,
// a class, nor a recognized binding marker. Classification is total:
// every target either falls into exactly one binding or fails here, at
// construction time, never at call time.
type ClassificationError struct {
	Target interface{}
	Reason string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("wrap: cannot classify %T: %s", e.Target, e.Reason)
}

// BindingError reports an attempt to resolve a binding through an
// unsupported accessor. It is distinct from an attribute error so
// callers can tell "this object's shape is unsupported" from "this
// attribute doesn't exist".
type BindingError struct {
	Accessor interface{}
	Reason   string
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("wrap: cannot bind through %T: %s", e.Accessor, e.Reason)
}

// IsClassificationError reports whether err is a ClassificationError.
func IsClassificationError(err error) bool {
	var ce *ClassificationError
	return errors.As(err, &ce)
}

// IsBindingError reports whether err is a BindingError.
func IsBindingError(err error) bool {
	var be *BindingError
	return errors.As(err, &be)
}

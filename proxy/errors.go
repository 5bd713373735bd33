package proxy

import (
	"errors"
	"fmt"
	"reflect"
)

// ---------------------------------------------------------------------------
// Error taxonomy
// ---------------------------------------------------------------------------

// AttributeError reports a failed attribute operation on a proxy target.
// It carries exactly what the same operation performed directly against
// the target would report; the proxy never swallows or translates these.
type AttributeError struct {
	Op     string       // "get", "set", or "delete"
	Name   string       // the attribute name
	Type   reflect.Type // the target's type (nil for untyped nil targets)
	Reason string       // optional detail beyond "no such attribute"
}

func (e *AttributeError) Error() string {
	t := "nil"
	if e.Type != nil {
		t = e.Type.String()
	}
	if e.Reason != "" {
		return fmt.Sprintf("proxy: %s %s.%s: %s", e.Op, t, e.Name, e.Reason)
	}
	return fmt.Sprintf("proxy: %s %s.%s: no such attribute", e.Op, t, e.Name)
}

// UnsupportedOpError reports a protocol operation the target's kind does
// not support (calling a non-callable, iterating a scalar, and so on).
type UnsupportedOpError struct {
	Op   string
	Type reflect.Type
}

func (e *UnsupportedOpError) Error() string {
	t := "nil"
	if e.Type != nil {
		t = e.Type.String()
	}
	return fmt.Sprintf("proxy: %s not supported by %s", e.Op, t)
}

// ErrTargetCollected is returned by a WeakProxy whose target has been
// reclaimed by the garbage collector.
var ErrTargetCollected = errors.New("proxy: weak target has been collected")

// IsAttributeError reports whether err is an AttributeError.
func IsAttributeError(err error) bool {
	var ae *AttributeError
	return errors.As(err, &ae)
}

// IsUnsupportedOp reports whether err is an UnsupportedOpError.
func IsUnsupportedOp(err error) bool {
	var ue *UnsupportedOpError
	return errors.As(err, &ue)
}

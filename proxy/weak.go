package proxy

import (
	"reflect"
	"weak"
)

// ---------------------------------------------------------------------------
// WeakProxy: a proxy that does not keep its target alive
// ---------------------------------------------------------------------------

// WeakProxy wraps a target without preventing its collection. Once the
// collector reclaims the target, every access fails with
// ErrTargetCollected.
type WeakProxy[T any] struct {
	ref    weak.Pointer[T]
	engine Engine
}

// NewWeak creates a weak proxy around target. The caller must hold a
// strong reference elsewhere for as long as the proxy should work.
func NewWeak[T any](target *T) *WeakProxy[T] {
	return &WeakProxy[T]{ref: weak.Make(target), engine: Default()}
}

// Alive reports whether the target has not been collected.
func (w *WeakProxy[T]) Alive() bool { return w.ref.Value() != nil }

// Strong returns a regular Proxy over the target, re-establishing a
// strong reference for the proxy's lifetime.
func (w *WeakProxy[T]) Strong() (*Proxy, error) {
	t := w.ref.Value()
	if t == nil {
		return nil, ErrTargetCollected
	}
	return NewWithEngine(t, w.engine), nil
}

// Get forwards attribute access to the target if it is still alive.
func (w *WeakProxy[T]) Get(name string) (interface{}, error) {
	p, err := w.Strong()
	if err != nil {
		return nil, err
	}
	return p.Get(name)
}

// Call forwards invocation to the target if it is still alive. A
// pointer-to-func target is dereferenced so the function itself is
// called.
func (w *WeakProxy[T]) Call(args Args, kwargs KWArgs) (interface{}, error) {
	t := w.ref.Value()
	if t == nil {
		return nil, ErrTargetCollected
	}
	if v := reflect.ValueOf(*t); v.IsValid() && v.Kind() == reflect.Func {
		if len(kwargs) > 0 {
			return nil, &UnsupportedOpError{Op: "call with keyword arguments", Type: v.Type()}
		}
		return CallFunc(v, args)
	}
	return NewWithEngine(t, w.engine).Call(args, kwargs)
}

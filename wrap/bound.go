package wrap

import "reflect"

// ---------------------------------------------------------------------------
// BoundCallableWrapper
// ---------------------------------------------------------------------------

// BoundCallableWrapper is the transient result of resolving a
// CallableWrapper against an accessor. It carries the resolved instance
// and the wrapped callable with its binding already applied. One is
// produced fresh on every access and discarded after the call; it is
// never cached, because the next access may occur under a different
// instance.
type BoundCallableWrapper struct {
	parent   *CallableWrapper
	instance interface{}
	wrapped  Callable

	// unbound marks class-style access to a plain function: the
	// receiver arrives as the first positional argument at call time.
	unbound bool
}

// Bind resolves the binding of w against an accessor: an instance, or a
// class (a reflect.Type) for class-style access. This is the explicit
// counterpart of member selection; callers re-trigger it on every
// access.
func (w *CallableWrapper) Bind(accessor interface{}) (*BoundCallableWrapper, error) {
	target := w.Unwrap()

	switch w.binding {
	case BindingStaticMethod:
		// No receiver, regardless of access path.
		return &BoundCallableWrapper{
			parent:  w,
			wrapped: callableFor(target),
		}, nil

	case BindingClassMethod:
		// The receiver is always the class, even when accessed
		// through an instance.
		cls := ClassOf(accessor)
		if cls == nil {
			return nil, &BindingError{Accessor: accessor, Reason: "no class for accessor"}
		}
		return &BoundCallableWrapper{
			parent:   w,
			instance: cls,
			wrapped:  prepend(target, cls),
		}, nil

	case BindingFunction:
		if accessor == nil {
			return nil, &BindingError{Accessor: accessor, Reason: "nil accessor"}
		}
		if _, ok := accessor.(reflect.Type); ok {
			// Class-style access to a plain function: unbound. The
			// receiver is supplied explicitly at call time.
			return &BoundCallableWrapper{
				parent:  w,
				wrapped: callableFor(target),
				unbound: true,
			}, nil
		}
		return &BoundCallableWrapper{
			parent:   w,
			instance: accessor,
			wrapped:  prepend(target, accessor),
		}, nil

	case BindingClass:
		return nil, &BindingError{
			Accessor: accessor,
			Reason:   "a wrapped class is not a bindable attribute",
		}
	}

	return nil, &BindingError{Accessor: accessor, Reason: "unsupported binding"}
}

// Instance returns the resolved binding context: the instance, the
// class for class methods, or nil.
func (b *BoundCallableWrapper) Instance() interface{} { return b.instance }

// Parent returns the persistent wrapper this binding was resolved from.
func (b *BoundCallableWrapper) Parent() *CallableWrapper { return b.parent }

// Call hands the invocation to the wrapper function along with the
// resolved binding context. An unbound wrapper (class-style access to a
// plain function) first re-binds to its leading positional argument, so
// explicit receiver passing reports the receiver as the instance.
func (b *BoundCallableWrapper) Call(args Args, kwargs KWArgs) (interface{}, error) {
	if b.unbound {
		if len(args) == 0 {
			return nil, &BindingError{Reason: "unbound call requires the receiver as first argument"}
		}
		rebound, err := b.parent.Bind(args[0])
		if err != nil {
			return nil, err
		}
		return rebound.Call(args[1:], kwargs)
	}
	return b.parent.wrapper(b.wrapped, b.instance, args, kwargs)
}

// Get forwards attribute access to the underlying target.
func (b *BoundCallableWrapper) Get(name string) (interface{}, error) {
	return b.parent.Get(name)
}

// Unwrap returns the underlying target of the parent wrapper.
func (b *BoundCallableWrapper) Unwrap() interface{} { return b.parent.Unwrap() }

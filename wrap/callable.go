package wrap

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/chazu/veneer/proxy"
)

// ---------------------------------------------------------------------------
// CallableWrapper
// ---------------------------------------------------------------------------

// CallableWrapper proxies a callable target and routes every invocation
// through a wrapper function. It is transparent for everything except
// the call path: attribute access, comparison, and the rest of the
// protocol surface forward to the target via the embedded Proxy.
type CallableWrapper struct {
	*proxy.Proxy

	wrapper WrapperFunc
	binding Binding
	class   reflect.Type // set when binding == BindingClass
	name    string
}

// New classifies target and wraps it. Classification failures surface
// here, at construction time.
func New(target interface{}, wrapper WrapperFunc) (*CallableWrapper, error) {
	binding, err := Classify(target)
	if err != nil {
		return nil, err
	}

	inner := target
	var class reflect.Type
	switch m := target.(type) {
	case ClassMethod:
		inner = m.Func
	case StaticMethod:
		inner = m.Func
	case reflect.Type:
		class = m
	}

	return &CallableWrapper{
		Proxy:   proxy.New(inner),
		wrapper: wrapper,
		binding: binding,
		class:   class,
		name:    nameOf(inner, binding),
	}, nil
}

// Binding returns the wrap-time classification of the target.
func (w *CallableWrapper) Binding() Binding { return w.binding }

// Name returns a diagnostic name for the wrapped target: the function's
// name, or the class's type name.
func (w *CallableWrapper) Name() string { return w.name }

// Wrapper returns the wrapper function invocations are routed through.
func (w *CallableWrapper) Wrapper() WrapperFunc { return w.wrapper }

// Call invokes the wrapper with no binding context: instance is nil and
// wrapped resolves to the target itself (the class, for class targets).
func (w *CallableWrapper) Call(args Args, kwargs KWArgs) (interface{}, error) {
	switch w.binding {
	case BindingClass:
		return w.wrapper(classCallable(w.class), nil, args, kwargs)
	default:
		return w.wrapper(callableFor(w.Unwrap()), nil, args, kwargs)
	}
}

// BindAttr implements proxy.Binder: fetching a CallableWrapper through
// a proxy produces a bound wrapper for the access receiver.
func (w *CallableWrapper) BindAttr(receiver interface{}) (interface{}, error) {
	return w.Bind(receiver)
}

// ---------------------------------------------------------------------------
// Plumbing
// ---------------------------------------------------------------------------

// callableFor adapts a target to the Callable shape. Values already
// carrying call semantics delegate; plain funcs go through reflective
// invocation, which rejects keyword arguments since Go functions have
// no named parameters.
func callableFor(target interface{}) Callable {
	if c, ok := target.(caller); ok {
		return c.Call
	}
	fv := reflect.ValueOf(target)
	return func(args Args, kwargs KWArgs) (interface{}, error) {
		if len(kwargs) > 0 {
			return nil, &proxy.UnsupportedOpError{Op: "call with keyword arguments", Type: fv.Type()}
		}
		return proxy.CallFunc(fv, args)
	}
}

// prepend partially applies a receiver as the first positional
// argument, producing the bound form of target.
func prepend(target interface{}, receiver interface{}) Callable {
	base := callableFor(target)
	return func(args Args, kwargs KWArgs) (interface{}, error) {
		all := make(Args, 0, len(args)+1)
		all = append(all, receiver)
		all = append(all, args...)
		return base(all, kwargs)
	}
}

func nameOf(target interface{}, binding Binding) string {
	if binding == BindingClass {
		if t, ok := target.(reflect.Type); ok {
			return t.String()
		}
	}
	v := reflect.ValueOf(target)
	if v.Kind() == reflect.Func {
		if fn := runtime.FuncForPC(v.Pointer()); fn != nil {
			name := fn.Name()
			if i := strings.LastIndex(name, "/"); i >= 0 {
				name = name[i+1:]
			}
			return name
		}
	}
	return "<anonymous>"
}

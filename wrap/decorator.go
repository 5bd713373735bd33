package wrap

// ---------------------------------------------------------------------------
// Decorator factory
// ---------------------------------------------------------------------------

// DecoratorFactory produces CallableWrappers that all share one wrapper
// function. It is the primary way wrappers are constructed:
//
//	logged := wrap.Decorator(myWrapper)
//	f := logged.MustApply(add)
type DecoratorFactory struct {
	wrapper WrapperFunc
}

// Decorator builds a factory around a wrapper function.
func Decorator(wrapper WrapperFunc) *DecoratorFactory {
	return &DecoratorFactory{wrapper: wrapper}
}

// Apply wraps a target. Applying to a function, a ClassMethod or
// StaticMethod marker, or a class produces, in every case, a wrapper
// call- and attribute-compatible with the original target.
func (d *DecoratorFactory) Apply(target interface{}) (*CallableWrapper, error) {
	return New(target, d.wrapper)
}

// MustApply is Apply for package-level declarations; it panics on
// classification failure.
func (d *DecoratorFactory) MustApply(target interface{}) *CallableWrapper {
	w, err := d.Apply(target)
	if err != nil {
		panic(err)
	}
	return w
}

// ---------------------------------------------------------------------------
// Decorator-level extra arguments (currying convenience)
// ---------------------------------------------------------------------------

// ArgsWrapperFunc is a wrapper that additionally receives the extra
// arguments the decorator itself was built with.
type ArgsWrapperFunc func(wrapped Callable, instance interface{}, args Args, kwargs KWArgs, extra Args) (interface{}, error)

// DecoratorWithArgs partially applies decorator-level extra arguments
// before wrapping; fn sees them as its trailing parameter on every
// invocation.
func DecoratorWithArgs(fn ArgsWrapperFunc, extra ...interface{}) *DecoratorFactory {
	bound := Args(extra)
	return Decorator(func(wrapped Callable, instance interface{}, args Args, kwargs KWArgs) (interface{}, error) {
		return fn(wrapped, instance, args, kwargs, bound)
	})
}

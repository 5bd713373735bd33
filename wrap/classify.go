package wrap

import "reflect"

// caller is satisfied by values that already carry call semantics,
// including CallableWrapper itself, so wrappers compose.
type caller interface {
	Call(args Args, kwargs KWArgs) (interface{}, error)
}

// Classify determines the binding of a wrap target:
//
//  1. a reflect.Type is a class;
//  2. a ClassMethod marker is a class method;
//  3. a StaticMethod marker is a static method;
//  4. a func, or anything already carrying call semantics, is a plain
//     function whose effective binding resolves at access time.
//
// Anything else fails with a ClassificationError.
func Classify(target interface{}) (Binding, error) {
	switch t := target.(type) {
	case nil:
		return 0, &ClassificationError{Target: target, Reason: "nil target"}
	case reflect.Type:
		return BindingClass, nil
	case ClassMethod:
		if err := mustBeFunc(t.Func, "class method"); err != nil {
			return 0, err
		}
		return BindingClassMethod, nil
	case StaticMethod:
		if err := mustBeFunc(t.Func, "static method"); err != nil {
			return 0, err
		}
		return BindingStaticMethod, nil
	case caller:
		return BindingFunction, nil
	}

	if v := reflect.ValueOf(target); v.Kind() == reflect.Func {
		if v.IsNil() {
			return 0, &ClassificationError{Target: target, Reason: "nil function"}
		}
		return BindingFunction, nil
	}
	return 0, &ClassificationError{
		Target: target,
		Reason: "neither a callable, a class, nor a binding marker",
	}
}

func mustBeFunc(fn interface{}, marker string) error {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return &ClassificationError{Target: fn, Reason: marker + " marker must hold a function"}
	}
	return nil
}

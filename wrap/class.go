package wrap

import (
	"reflect"

	"github.com/chazu/veneer/proxy"
)

// ---------------------------------------------------------------------------
// Class targets
// ---------------------------------------------------------------------------

// classCallable adapts a class to the Callable shape: calling it
// instantiates the class.
func classCallable(t reflect.Type) Callable {
	return func(args Args, kwargs KWArgs) (interface{}, error) {
		return Instantiate(t, args, kwargs)
	}
}

// Instantiate constructs a new instance of a class. Positional
// arguments fill the exported fields of a struct class in declaration
// order; keyword arguments assign fields by name. The result is a
// pointer to the new instance, so type assertions against the original
// type hold on the wrapped class exactly as on the unwrapped one.
func Instantiate(t reflect.Type, args Args, kwargs KWArgs) (interface{}, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	ptr := reflect.New(t)

	if t.Kind() != reflect.Struct {
		if len(args) == 1 && len(kwargs) == 0 {
			v, err := conformField(reflect.ValueOf(args[0]), t)
			if err != nil {
				return nil, &proxy.AttributeError{Op: "set", Name: t.String(), Type: t, Reason: err.Error()}
			}
			ptr.Elem().Set(v)
			return ptr.Interface(), nil
		}
		if len(args) > 0 || len(kwargs) > 0 {
			return nil, &proxy.UnsupportedOpError{Op: "construction with arguments", Type: t}
		}
		return ptr.Interface(), nil
	}

	elem := ptr.Elem()

	var exported []reflect.StructField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.IsExported() {
			exported = append(exported, f)
		}
	}

	if len(args) > len(exported) {
		return nil, &proxy.UnsupportedOpError{Op: "construction with surplus arguments", Type: t}
	}
	for i, a := range args {
		fv := elem.FieldByIndex(exported[i].Index)
		v, err := conformField(reflect.ValueOf(a), fv.Type())
		if err != nil {
			return nil, &proxy.AttributeError{Op: "set", Name: exported[i].Name, Type: t, Reason: err.Error()}
		}
		fv.Set(v)
	}

	for name, a := range kwargs {
		f, ok := t.FieldByName(name)
		if !ok || !f.IsExported() {
			return nil, &proxy.AttributeError{Op: "set", Name: name, Type: t}
		}
		fv := elem.FieldByIndex(f.Index)
		v, err := conformField(reflect.ValueOf(a), fv.Type())
		if err != nil {
			return nil, &proxy.AttributeError{Op: "set", Name: name, Type: t, Reason: err.Error()}
		}
		fv.Set(v)
	}

	return ptr.Interface(), nil
}

// conformField mirrors argument conformance for field assignment.
func conformField(v reflect.Value, want reflect.Type) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Zero(want), nil
	}
	if v.Type().AssignableTo(want) {
		return v, nil
	}
	if v.Type().ConvertibleTo(want) {
		return v.Convert(want), nil
	}
	return reflect.Value{}, &proxy.UnsupportedOpError{Op: "conversion from " + v.Type().String(), Type: want}
}

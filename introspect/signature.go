// Package introspect extracts callable parameter signatures, both at
// runtime via reflection and statically from source packages.
package introspect

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Param describes one parameter or result.
type Param struct {
	Name string // empty when unknown (runtime extraction)
	Type string
}

// Signature describes a callable's parameters and results.
type Signature struct {
	Name       string
	Params     []Param
	Results    []Param
	Variadic   bool
	ReturnsErr bool // last result is error
}

// Of extracts the signature of a function value via reflection.
// Parameter names are not recoverable at runtime, only types.
func Of(fn interface{}) (*Signature, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, fmt.Errorf("introspect: %T is not a function", fn)
	}
	return fromType(v.Type(), funcName(v)), nil
}

// OfMethod extracts the signature of a named method in receiver's
// method set. The receiver parameter itself is not included.
func OfMethod(receiver interface{}, name string) (*Signature, error) {
	v := reflect.ValueOf(receiver)
	if !v.IsValid() {
		return nil, fmt.Errorf("introspect: nil receiver")
	}
	m := v.MethodByName(name)
	if !m.IsValid() {
		return nil, fmt.Errorf("introspect: %s has no method %s", v.Type(), name)
	}
	return fromType(m.Type(), name), nil
}

func fromType(t reflect.Type, name string) *Signature {
	sig := &Signature{Name: name, Variadic: t.IsVariadic()}

	for i := 0; i < t.NumIn(); i++ {
		ts := t.In(i).String()
		if sig.Variadic && i == t.NumIn()-1 {
			ts = "..." + t.In(i).Elem().String()
		}
		sig.Params = append(sig.Params, Param{Type: ts})
	}
	for i := 0; i < t.NumOut(); i++ {
		sig.Results = append(sig.Results, Param{Type: t.Out(i).String()})
	}
	if n := t.NumOut(); n > 0 && t.Out(n-1) == reflect.TypeOf((*error)(nil)).Elem() {
		sig.ReturnsErr = true
	}
	return sig
}

func funcName(v reflect.Value) string {
	// Full symbol names carry the package path; keep the last element.
	name := ""
	if fn := runtime.FuncForPC(v.Pointer()); fn != nil {
		name = fn.Name()
	}
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// String renders the signature in Go declaration style.
func (s *Signature) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteString("(")
	b.WriteString(renderParams(s.Params))
	b.WriteString(")")
	switch len(s.Results) {
	case 0:
	case 1:
		b.WriteString(" ")
		b.WriteString(s.Results[0].Type)
	default:
		b.WriteString(" (")
		b.WriteString(renderParams(s.Results))
		b.WriteString(")")
	}
	return b.String()
}

func renderParams(ps []Param) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		if p.Name != "" {
			parts[i] = p.Name + " " + p.Type
		} else {
			parts[i] = p.Type
		}
	}
	return strings.Join(parts, ", ")
}

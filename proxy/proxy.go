package proxy

import (
	"fmt"
	"reflect"
)

// ---------------------------------------------------------------------------
// Proxy: transparent wrapper around a single target value
// ---------------------------------------------------------------------------

// Args is an ordered positional-argument sequence.
type Args []interface{}

// KWArgs is a keyword-argument mapping with unique string keys.
type KWArgs map[string]interface{}

// Binder is implemented by attribute values that participate in receiver
// binding. When Get fetches an attribute whose value implements Binder,
// the value is bound to the access receiver before being returned. This
// is how a call wrapper held in a struct field becomes a bound wrapper
// on access.
type Binder interface {
	BindAttr(receiver interface{}) (interface{}, error)
}

// Proxy wraps a target value and forwards operations to it. The target
// reference is fixed at construction; the only other state is one
// auxiliary slot for caller data. Construction performs no target
// behavior beyond storing the reference.
type Proxy struct {
	target interface{}
	value  reflect.Value
	engine Engine
	state  interface{}
}

// New wraps target using the default attribute engine.
func New(target interface{}) *Proxy {
	return NewWithEngine(target, Default())
}

// NewWithEngine wraps target using an explicit attribute engine.
func NewWithEngine(target interface{}, engine Engine) *Proxy {
	return &Proxy{
		target: target,
		value:  reflect.ValueOf(target),
		engine: engine,
	}
}

// Unwrap returns the original target by identity.
func (p *Proxy) Unwrap() interface{} { return p.target }

// Target returns the target's reflect.Value.
func (p *Proxy) Target() reflect.Value { return p.value }

// TargetType returns the target's dynamic type, or nil for nil targets.
func (p *Proxy) TargetType() reflect.Type {
	if !p.value.IsValid() {
		return nil
	}
	return p.value.Type()
}

// State returns the auxiliary wrapper-state slot.
func (p *Proxy) State() interface{} { return p.state }

// SetState stores caller data in the auxiliary slot. The slot belongs
// to the proxy, never to the target.
func (p *Proxy) SetState(state interface{}) { p.state = state }

// String forwards to the target's formatting.
func (p *Proxy) String() string { return fmt.Sprint(p.target) }

// ---------------------------------------------------------------------------
// Attribute access
// ---------------------------------------------------------------------------

// Get returns the named attribute of the target: a map entry, an
// exported struct field, or a bound method, in that resolution order.
// Attribute values implementing Binder are bound to the target first.
func (p *Proxy) Get(name string) (interface{}, error) {
	a, err := p.engine.resolve(p.value, name)
	if err != nil {
		return nil, err
	}

	var got interface{}
	switch a.kind {
	case attrMapKey:
		entry := derefValue(p.value).MapIndex(reflect.ValueOf(name))
		if !entry.IsValid() {
			return nil, &AttributeError{Op: "get", Name: name, Type: p.value.Type()}
		}
		got = entry.Interface()
	case attrField:
		got = derefValue(p.value).FieldByIndex(a.index).Interface()
	case attrMethod:
		got = p.value.Method(a.method).Interface()
	}

	if b, ok := got.(Binder); ok {
		return b.BindAttr(p.target)
	}
	return got, nil
}

// Set assigns the named attribute on the real target. Map targets gain
// or replace the entry; struct targets must be held by pointer for the
// field to be settable, exactly as with direct reflection.
func (p *Proxy) Set(name string, value interface{}) error {
	if !p.value.IsValid() {
		return &AttributeError{Op: "set", Name: name}
	}

	elem := derefValue(p.value)
	if elem.IsValid() && elem.Kind() == reflect.Map && elem.Type().Key().Kind() == reflect.String {
		vv, err := conform(reflect.ValueOf(value), elem.Type().Elem())
		if err != nil {
			return &AttributeError{Op: "set", Name: name, Type: p.value.Type(), Reason: err.Error()}
		}
		elem.SetMapIndex(reflect.ValueOf(name), vv)
		return nil
	}

	if elem.IsValid() && elem.Kind() == reflect.Struct {
		f, ok := elem.Type().FieldByName(name)
		if ok && f.IsExported() {
			fv := elem.FieldByIndex(f.Index)
			if !fv.CanSet() {
				return &AttributeError{
					Op: "set", Name: name, Type: p.value.Type(),
					Reason: "target is not addressable (wrap a pointer to mutate)",
				}
			}
			vv, err := conform(reflect.ValueOf(value), fv.Type())
			if err != nil {
				return &AttributeError{Op: "set", Name: name, Type: p.value.Type(), Reason: err.Error()}
			}
			fv.Set(vv)
			return nil
		}
	}

	return &AttributeError{Op: "set", Name: name, Type: p.value.Type()}
}

// Delete removes the named attribute. Only map entries can be deleted;
// struct fields report an AttributeError, as Go has no field deletion.
func (p *Proxy) Delete(name string) error {
	if !p.value.IsValid() {
		return &AttributeError{Op: "delete", Name: name}
	}

	elem := derefValue(p.value)
	if elem.IsValid() && elem.Kind() == reflect.Map && elem.Type().Key().Kind() == reflect.String {
		key := reflect.ValueOf(name)
		if !elem.MapIndex(key).IsValid() {
			return &AttributeError{Op: "delete", Name: name, Type: p.value.Type()}
		}
		elem.SetMapIndex(key, reflect.Value{})
		return nil
	}

	return &AttributeError{
		Op: "delete", Name: name, Type: p.value.Type(),
		Reason: "attributes of this kind cannot be deleted",
	}
}

// Has reports whether the target resolves the named attribute.
func (p *Proxy) Has(name string) bool {
	_, err := p.engine.resolve(p.value, name)
	return err == nil
}

// ---------------------------------------------------------------------------
// Calling
// ---------------------------------------------------------------------------

// Call invokes a func target with the given arguments. Go functions
// have no named parameters, so keyword arguments are rejected here;
// class-shaped targets accept them through the wrap package instead.
func (p *Proxy) Call(args Args, kwargs KWArgs) (interface{}, error) {
	if !p.value.IsValid() || p.value.Kind() != reflect.Func {
		return nil, &UnsupportedOpError{Op: "call", Type: p.TargetType()}
	}
	if len(kwargs) > 0 {
		return nil, &UnsupportedOpError{Op: "call with keyword arguments", Type: p.value.Type()}
	}
	return CallFunc(p.value, args)
}

// CallFunc invokes fn (which must be of func kind) with args converted
// to its parameter types.
//
// Result convention: a trailing error result is split off and returned
// as the error; zero remaining results yield nil, one is returned bare,
// several are returned as a []interface{}.
func CallFunc(fn reflect.Value, args Args) (interface{}, error) {
	t := fn.Type()

	numFixed := t.NumIn()
	if t.IsVariadic() {
		numFixed--
		if len(args) < numFixed {
			return nil, fmt.Errorf("proxy: call needs at least %d arguments, got %d", numFixed, len(args))
		}
	} else if len(args) != t.NumIn() {
		return nil, fmt.Errorf("proxy: call needs %d arguments, got %d", t.NumIn(), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var want reflect.Type
		if i < numFixed {
			want = t.In(i)
		} else {
			want = t.In(numFixed).Elem()
		}
		v, err := conform(reflect.ValueOf(a), want)
		if err != nil {
			return nil, fmt.Errorf("proxy: argument %d: %w", i, err)
		}
		in[i] = v
	}

	out := fn.Call(in)

	var callErr error
	if n := t.NumOut(); n > 0 && t.Out(n-1) == errorType {
		if ev := out[n-1]; !ev.IsNil() {
			callErr = ev.Interface().(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, callErr
	case 1:
		return out[0].Interface(), callErr
	default:
		results := make([]interface{}, len(out))
		for i, o := range out {
			results[i] = o.Interface()
		}
		return results, callErr
	}
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// conform adapts v to the wanted type: assignable values pass through,
// convertible values are converted, nil becomes the zero value of
// nilable kinds.
func conform(v reflect.Value, want reflect.Type) (reflect.Value, error) {
	if !v.IsValid() {
		switch want.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
			reflect.Func, reflect.Interface:
			return reflect.Zero(want), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot use nil as %s", want)
	}
	if v.Type().AssignableTo(want) {
		return v, nil
	}
	if v.Type().ConvertibleTo(want) {
		return v.Convert(want), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot use %s as %s", v.Type(), want)
}

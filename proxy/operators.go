package proxy

import (
	"fmt"
	"hash/maphash"
	"reflect"
	"strings"
)

// ---------------------------------------------------------------------------
// Comparison
// ---------------------------------------------------------------------------

// Equal forwards equality to the target. Comparing against another
// proxy compares the two targets, so a proxy is equal to the value it
// wraps and to any proxy wrapping an equal value.
func (p *Proxy) Equal(other interface{}) bool {
	if o, ok := other.(*Proxy); ok {
		other = o.target
	}
	return reflect.DeepEqual(p.target, other)
}

// Less orders the target against another value. Supported for integer,
// unsigned, float, and string kinds; everything else reports the
// target's own lack of ordering.
func (p *Proxy) Less(other interface{}) (bool, error) {
	if o, ok := other.(*Proxy); ok {
		other = o.target
	}
	a := p.value
	if !a.IsValid() {
		return false, &UnsupportedOpError{Op: "ordering"}
	}
	b, err := conform(reflect.ValueOf(other), a.Type())
	if err != nil {
		return false, &UnsupportedOpError{Op: "ordering", Type: a.Type()}
	}

	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return a.Uint() < b.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float(), nil
	case reflect.String:
		return a.String() < b.String(), nil
	}
	return false, &UnsupportedOpError{Op: "ordering", Type: a.Type()}
}

var hashSeed = maphash.MakeSeed()

// Hash forwards hashing to the target. Incomparable targets fail the
// same way they would as a map key.
func (p *Proxy) Hash() (sum uint64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &UnsupportedOpError{Op: "hashing", Type: p.TargetType()}
		}
	}()
	return maphash.Comparable(hashSeed, p.target), nil
}

// ---------------------------------------------------------------------------
// Container protocol
// ---------------------------------------------------------------------------

// Len forwards to the target's length. Strings, slices, arrays, maps,
// and channels have one; other kinds do not.
func (p *Proxy) Len() (int, error) {
	v := derefValue(p.value)
	if !v.IsValid() {
		return 0, &UnsupportedOpError{Op: "len"}
	}
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return v.Len(), nil
	}
	return 0, &UnsupportedOpError{Op: "len", Type: p.value.Type()}
}

// Contains reports membership: a key of a map target, an element of a
// slice or array target, or a substring of a string target.
func (p *Proxy) Contains(x interface{}) (bool, error) {
	if o, ok := x.(*Proxy); ok {
		x = o.target
	}
	v := derefValue(p.value)
	if !v.IsValid() {
		return false, &UnsupportedOpError{Op: "contains"}
	}
	switch v.Kind() {
	case reflect.Map:
		key, err := conform(reflect.ValueOf(x), v.Type().Key())
		if err != nil {
			return false, nil
		}
		return v.MapIndex(key).IsValid(), nil
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if reflect.DeepEqual(v.Index(i).Interface(), x) {
				return true, nil
			}
		}
		return false, nil
	case reflect.String:
		if s, ok := x.(string); ok {
			return strings.Contains(v.String(), s), nil
		}
		return false, nil
	}
	return false, &UnsupportedOpError{Op: "contains", Type: p.value.Type()}
}

// Index forwards positional indexing. Out-of-range access fails with
// the runtime's own message rather than a substitute.
func (p *Proxy) Index(i int) (result interface{}, err error) {
	v := derefValue(p.value)
	if !v.IsValid() {
		return nil, &UnsupportedOpError{Op: "index"}
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("proxy: %v", r)
		}
	}()
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return v.Index(i).Interface(), nil
	case reflect.String:
		return v.String()[i], nil
	}
	return nil, &UnsupportedOpError{Op: "index", Type: p.value.Type()}
}

// SetIndex assigns an element of a slice target through the proxy.
func (p *Proxy) SetIndex(i int, value interface{}) (err error) {
	v := derefValue(p.value)
	if !v.IsValid() || v.Kind() != reflect.Slice {
		return &UnsupportedOpError{Op: "index assignment", Type: p.TargetType()}
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("proxy: %v", r)
		}
	}()
	vv, err := conform(reflect.ValueOf(value), v.Type().Elem())
	if err != nil {
		return fmt.Errorf("proxy: index assignment: %w", err)
	}
	v.Index(i).Set(vv)
	return nil
}

// ---------------------------------------------------------------------------
// Numeric protocol
// ---------------------------------------------------------------------------

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
)

var opNames = map[binaryOp]string{
	opAdd: "addition",
	opSub: "subtraction",
	opMul: "multiplication",
	opDiv: "division",
}

// Add forwards the + operator: numeric addition, or concatenation for
// string targets. The result has the target's type.
func (p *Proxy) Add(other interface{}) (interface{}, error) { return p.binary(opAdd, other) }

// Sub forwards the - operator.
func (p *Proxy) Sub(other interface{}) (interface{}, error) { return p.binary(opSub, other) }

// Mul forwards the * operator.
func (p *Proxy) Mul(other interface{}) (interface{}, error) { return p.binary(opMul, other) }

// Div forwards the / operator. Integer division by zero fails with the
// runtime's own message.
func (p *Proxy) Div(other interface{}) (interface{}, error) { return p.binary(opDiv, other) }

func (p *Proxy) binary(op binaryOp, other interface{}) (result interface{}, err error) {
	if o, ok := other.(*Proxy); ok {
		other = o.target
	}
	a := p.value
	if !a.IsValid() {
		return nil, &UnsupportedOpError{Op: opNames[op]}
	}
	b, cerr := conform(reflect.ValueOf(other), a.Type())
	if cerr != nil {
		return nil, &UnsupportedOpError{Op: opNames[op], Type: a.Type()}
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("proxy: %v", r)
		}
	}()

	t := a.Type()
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		switch op {
		case opAdd:
			n = a.Int() + b.Int()
		case opSub:
			n = a.Int() - b.Int()
		case opMul:
			n = a.Int() * b.Int()
		case opDiv:
			n = a.Int() / b.Int()
		}
		return reflect.ValueOf(n).Convert(t).Interface(), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var n uint64
		switch op {
		case opAdd:
			n = a.Uint() + b.Uint()
		case opSub:
			n = a.Uint() - b.Uint()
		case opMul:
			n = a.Uint() * b.Uint()
		case opDiv:
			n = a.Uint() / b.Uint()
		}
		return reflect.ValueOf(n).Convert(t).Interface(), nil

	case reflect.Float32, reflect.Float64:
		var n float64
		switch op {
		case opAdd:
			n = a.Float() + b.Float()
		case opSub:
			n = a.Float() - b.Float()
		case opMul:
			n = a.Float() * b.Float()
		case opDiv:
			n = a.Float() / b.Float()
		}
		return reflect.ValueOf(n).Convert(t).Interface(), nil

	case reflect.String:
		if op == opAdd {
			return a.String() + b.String(), nil
		}
	}
	return nil, &UnsupportedOpError{Op: opNames[op], Type: a.Type()}
}

package proxy

import "reflect"

// ---------------------------------------------------------------------------
// Iteration
// ---------------------------------------------------------------------------

// Iterator yields the elements of an iterable target one at a time.
type Iterator struct {
	next func() (interface{}, bool)
}

// Next returns the next element, or false when the sequence is
// exhausted.
func (it *Iterator) Next() (interface{}, bool) { return it.next() }

// Collect drains the iterator into a slice.
func (it *Iterator) Collect() []interface{} {
	var out []interface{}
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

// Iter forwards iteration to the target: elements of slices and
// arrays, keys of maps, runes of strings, received values of channels.
func (p *Proxy) Iter() (*Iterator, error) {
	v := derefValue(p.value)
	if !v.IsValid() {
		return nil, &UnsupportedOpError{Op: "iteration"}
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		i := 0
		return &Iterator{next: func() (interface{}, bool) {
			if i >= v.Len() {
				return nil, false
			}
			e := v.Index(i).Interface()
			i++
			return e, true
		}}, nil

	case reflect.Map:
		iter := v.MapRange()
		return &Iterator{next: func() (interface{}, bool) {
			if !iter.Next() {
				return nil, false
			}
			return iter.Key().Interface(), true
		}}, nil

	case reflect.String:
		runes := []rune(v.String())
		i := 0
		return &Iterator{next: func() (interface{}, bool) {
			if i >= len(runes) {
				return nil, false
			}
			r := runes[i]
			i++
			return r, true
		}}, nil

	case reflect.Chan:
		return &Iterator{next: func() (interface{}, bool) {
			e, ok := v.Recv()
			if !ok {
				return nil, false
			}
			return e.Interface(), true
		}}, nil
	}

	return nil, &UnsupportedOpError{Op: "iteration", Type: p.value.Type()}
}

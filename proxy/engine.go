package proxy

import (
	"fmt"
	"reflect"
	"sync"
)

// ---------------------------------------------------------------------------
// Attribute resolution engines
// ---------------------------------------------------------------------------

// attrKind identifies how an attribute is reached on a target.
type attrKind int

const (
	attrField  attrKind = iota // exported struct field
	attrMethod                 // method in the target's method set
	attrMapKey                 // entry of a map[string]V target
)

// attr describes one resolved attribute of a target type.
type attr struct {
	kind   attrKind
	index  []int // field index path (attrField)
	method int   // method index (attrMethod)
}

// Engine resolves attribute names against a target value. Two engines
// implement the same contract: the reference engine walks the reflect
// API on every access, the cached engine indexes each target type once.
// Proxy behavior must be identical under either.
type Engine interface {
	// Name identifies the engine for configuration purposes.
	Name() string

	resolve(v reflect.Value, name string) (attr, error)
}

// ---------------------------------------------------------------------------
// Engine registry and startup selection
// ---------------------------------------------------------------------------

var (
	engineMu      sync.RWMutex
	engines       = map[string]Engine{}
	defaultEngine Engine
)

func init() {
	registerEngine(&referenceEngine{})
	registerEngine(&cachedEngine{})
	defaultEngine = engines["cached"]
}

func registerEngine(e Engine) {
	engines[e.Name()] = e
}

// Use selects the default attribute engine by name ("reference" or
// "cached"). Intended to be called once at startup, normally from
// loaded configuration; it is not a runtime tuning knob.
func Use(name string) error {
	engineMu.Lock()
	defer engineMu.Unlock()
	e, ok := engines[name]
	if !ok {
		return fmt.Errorf("proxy: unknown implementation %q", name)
	}
	defaultEngine = e
	return nil
}

// Implementation returns the name of the current default engine.
func Implementation() string {
	engineMu.RLock()
	defer engineMu.RUnlock()
	return defaultEngine.Name()
}

// Default returns the current default engine.
func Default() Engine {
	engineMu.RLock()
	defer engineMu.RUnlock()
	return defaultEngine
}

// Reference returns the reference engine.
func Reference() Engine { return engines["reference"] }

// Cached returns the cached engine.
func Cached() Engine { return engines["cached"] }

// ---------------------------------------------------------------------------
// Reference engine: resolve on every access
// ---------------------------------------------------------------------------

type referenceEngine struct{}

func (e *referenceEngine) Name() string { return "reference" }

func (e *referenceEngine) resolve(v reflect.Value, name string) (attr, error) {
	if !v.IsValid() {
		return attr{}, &AttributeError{Op: "get", Name: name}
	}

	// Map entries shadow methods: data before behavior.
	elem := derefValue(v)
	if elem.IsValid() && elem.Kind() == reflect.Map && elem.Type().Key().Kind() == reflect.String {
		if elem.MapIndex(reflect.ValueOf(name)).IsValid() {
			return attr{kind: attrMapKey}, nil
		}
	}

	if elem.IsValid() && elem.Kind() == reflect.Struct {
		if f, ok := elem.Type().FieldByName(name); ok && f.IsExported() {
			return attr{kind: attrField, index: f.Index}, nil
		}
	}

	// Methods are looked up on the target as held, so pointer-receiver
	// methods are visible exactly when they would be on a direct call.
	if m, ok := v.Type().MethodByName(name); ok && m.IsExported() {
		return attr{kind: attrMethod, method: m.Index}, nil
	}

	return attr{}, &AttributeError{Op: "get", Name: name, Type: v.Type()}
}

// ---------------------------------------------------------------------------
// Cached engine: per-type index, built once
// ---------------------------------------------------------------------------

type cachedEngine struct {
	// index maps reflect.Type -> map[string]attr. Entries are written
	// once per type and never mutated afterwards.
	index sync.Map
}

func (e *cachedEngine) Name() string { return "cached" }

func (e *cachedEngine) resolve(v reflect.Value, name string) (attr, error) {
	if !v.IsValid() {
		return attr{}, &AttributeError{Op: "get", Name: name}
	}

	// Map keys are dynamic; they cannot be indexed ahead of time.
	elem := derefValue(v)
	if elem.IsValid() && elem.Kind() == reflect.Map && elem.Type().Key().Kind() == reflect.String {
		if elem.MapIndex(reflect.ValueOf(name)).IsValid() {
			return attr{kind: attrMapKey}, nil
		}
	}

	idx := e.typeIndex(v.Type())
	if a, ok := idx[name]; ok {
		return a, nil
	}
	return attr{}, &AttributeError{Op: "get", Name: name, Type: v.Type()}
}

func (e *cachedEngine) typeIndex(t reflect.Type) map[string]attr {
	if cached, ok := e.index.Load(t); ok {
		return cached.(map[string]attr)
	}

	idx := make(map[string]attr)

	// Methods first so that fields shadow same-named methods, matching
	// the reference engine's resolution order.
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if m.IsExported() {
			idx[m.Name] = attr{kind: attrMethod, method: m.Index}
		}
	}

	st := t
	for st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st.Kind() == reflect.Struct {
		for _, f := range reflect.VisibleFields(st) {
			if f.IsExported() && !f.Anonymous {
				idx[f.Name] = attr{kind: attrField, index: f.Index}
			}
		}
	}

	actual, _ := e.index.LoadOrStore(t, idx)
	return actual.(map[string]attr)
}

// derefValue follows pointers down to the pointed-at value. Returns an
// invalid value for nil pointers.
func derefValue(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

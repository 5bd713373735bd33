package wrap

import (
	"reflect"

	"github.com/chazu/veneer/proxy"
)

// Args is an ordered positional-argument sequence.
type Args = proxy.Args

// KWArgs is a keyword-argument mapping with unique string keys.
type KWArgs = proxy.KWArgs

// Callable invokes the wrapped target with its binding already applied.
type Callable func(args Args, kwargs KWArgs) (interface{}, error)

// WrapperFunc is the user-supplied interception point. It receives the
// wrapped callable, the binding context under which the call occurred
// (nil, an instance, or a class), and the call arguments. The
// dispatcher never calls wrapped itself; whether and how the real
// callable executes is entirely the wrapper's decision, and errors it
// returns propagate to the call site verbatim.
type WrapperFunc func(wrapped Callable, instance interface{}, args Args, kwargs KWArgs) (interface{}, error)

// ---------------------------------------------------------------------------
// Binding classification
// ---------------------------------------------------------------------------

// Binding classifies how a wrapped target participates in receiver
// binding. It is determined once at wrap time; the effective binding of
// a plain function is resolved lazily at access time.
type Binding int

const (
	BindingFunction Binding = iota
	BindingInstanceMethod
	BindingClassMethod
	BindingStaticMethod
	BindingClass
)

var bindingNames = map[Binding]string{
	BindingFunction:       "function",
	BindingInstanceMethod: "instance method",
	BindingClassMethod:    "class method",
	BindingStaticMethod:   "static method",
	BindingClass:          "class",
}

func (b Binding) String() string {
	if n, ok := bindingNames[b]; ok {
		return n
	}
	return "unknown"
}

// ---------------------------------------------------------------------------
// Binding markers
// ---------------------------------------------------------------------------

// ClassMethod marks a function as class-bound: its first parameter
// receives the owning class (a reflect.Type), never an instance, no
// matter how the wrapper is accessed.
type ClassMethod struct {
	Func interface{}
}

// StaticMethod marks a function as unbound: it receives no implicit
// receiver regardless of access path.
type StaticMethod struct {
	Func interface{}
}

// ClassOf returns the class of a value for binding purposes: its
// dynamic type with pointers dereferenced, or the value itself if it
// already is a reflect.Type.
func ClassOf(v interface{}) reflect.Type {
	if t, ok := v.(reflect.Type); ok {
		return t
	}
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

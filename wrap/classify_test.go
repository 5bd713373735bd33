package wrap

import (
	"reflect"
	"testing"
)

func TestClassifyFunction(t *testing.T) {
	b, err := Classify(func() {})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if b != BindingFunction {
		t.Errorf("binding = %v, want function", b)
	}
}

func TestClassifyClass(t *testing.T) {
	type widget struct{}
	b, err := Classify(reflect.TypeOf(widget{}))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if b != BindingClass {
		t.Errorf("binding = %v, want class", b)
	}
}

func TestClassifyMarkers(t *testing.T) {
	b, err := Classify(ClassMethod{Func: func(cls reflect.Type) {}})
	if err != nil || b != BindingClassMethod {
		t.Errorf("ClassMethod: %v, %v", b, err)
	}

	b, err = Classify(StaticMethod{Func: func() {}})
	if err != nil || b != BindingStaticMethod {
		t.Errorf("StaticMethod: %v, %v", b, err)
	}
}

func TestClassifyWrapperIsCallable(t *testing.T) {
	inner, err := New(func() {}, passthrough)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Classify(inner)
	if err != nil || b != BindingFunction {
		t.Errorf("re-wrapping a wrapper: %v, %v", b, err)
	}
}

func TestClassifyFailures(t *testing.T) {
	cases := []struct {
		name   string
		target interface{}
	}{
		{"nil", nil},
		{"int", 42},
		{"struct value", struct{}{}},
		{"nil func", (func())(nil)},
		{"marker holding non-func", ClassMethod{Func: "nope"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Classify(tc.target)
			if !IsClassificationError(err) {
				t.Errorf("Classify(%v) error = %v, want ClassificationError", tc.target, err)
			}
		})
	}
}

func TestClassificationFailsAtConstruction(t *testing.T) {
	// Unclassifiable targets fail at wrap time, never at call time.
	_, err := New(42, passthrough)
	if !IsClassificationError(err) {
		t.Errorf("New(42) error = %v, want ClassificationError", err)
	}
}

func TestClassOf(t *testing.T) {
	type widget struct{}
	want := reflect.TypeOf(widget{})

	if got := ClassOf(&widget{}); got != want {
		t.Errorf("ClassOf(ptr) = %v, want %v", got, want)
	}
	if got := ClassOf(widget{}); got != want {
		t.Errorf("ClassOf(value) = %v, want %v", got, want)
	}
	if got := ClassOf(want); got != want {
		t.Errorf("ClassOf(type) = %v, want %v", got, want)
	}
}

// passthrough calls straight through; the anchor wrapper for tests.
func passthrough(wrapped Callable, instance interface{}, args Args, kwargs KWArgs) (interface{}, error) {
	return wrapped(args, kwargs)
}

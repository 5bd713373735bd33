package wrap

import (
	"errors"
	"testing"
)

func add(a, b int) int { return a + b }

// Pass-through identity law: for any wrapper that just calls through,
// the decorated callable returns exactly what the target would.
func TestPassThroughIdentity(t *testing.T) {
	w, err := New(add, passthrough)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := w.Call(Args{2, 3}, nil)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != add(2, 3) {
		t.Errorf("decorated add(2, 3) = %v, want %v", got, add(2, 3))
	}
}

// The wrapper controls the result: +1 over a + b.
func TestWrapperControlsResult(t *testing.T) {
	plusOne := func(wrapped Callable, instance interface{}, args Args, kwargs KWArgs) (interface{}, error) {
		r, err := wrapped(args, kwargs)
		if err != nil {
			return nil, err
		}
		return r.(int) + 1, nil
	}

	w, _ := New(add, plusOne)
	got, err := w.Call(Args{2, 3}, nil)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != 6 {
		t.Errorf("decorated f(2, 3) = %v, want 6", got)
	}
}

func TestDirectCallHasNilInstance(t *testing.T) {
	var seen interface{} = "sentinel"
	w, _ := New(add, func(wrapped Callable, instance interface{}, args Args, kwargs KWArgs) (interface{}, error) {
		seen = instance
		return wrapped(args, kwargs)
	})

	if _, err := w.Call(Args{1, 1}, nil); err != nil {
		t.Fatal(err)
	}
	if seen != nil {
		t.Errorf("instance = %v, want nil for a direct function call", seen)
	}
}

func TestWrapperMayDeclineToCall(t *testing.T) {
	called := false
	target := func() { called = true }

	w, _ := New(target, func(wrapped Callable, instance interface{}, args Args, kwargs KWArgs) (interface{}, error) {
		return "skipped", nil
	})

	got, err := w.Call(nil, nil)
	if err != nil || got != "skipped" {
		t.Errorf("Call = %v, %v", got, err)
	}
	if called {
		t.Error("the dispatcher must not call the target itself")
	}
}

func TestWrapperErrorPropagatesVerbatim(t *testing.T) {
	boom := errors.New("wrapper refused")
	w, _ := New(add, func(wrapped Callable, instance interface{}, args Args, kwargs KWArgs) (interface{}, error) {
		return nil, boom
	})

	_, err := w.Call(Args{1, 2}, nil)
	if err != boom {
		t.Errorf("error = %v, want the wrapper's error unchanged", err)
	}
}

func TestTargetErrorPropagatesVerbatim(t *testing.T) {
	boom := errors.New("target failed")
	target := func() error { return boom }

	w, _ := New(target, passthrough)
	_, err := w.Call(nil, nil)
	if err != boom {
		t.Errorf("error = %v, want the target's error unchanged", err)
	}
}

func TestWrapperTransparency(t *testing.T) {
	w, _ := New(add, passthrough)

	// The wrapper proxies its target: Unwrap recovers it by identity.
	if w.Unwrap() == nil {
		t.Fatal("Unwrap returned nil")
	}
	if w.Binding() != BindingFunction {
		t.Errorf("Binding = %v, want function", w.Binding())
	}
	if w.Name() == "" || w.Name() == "<anonymous>" {
		t.Errorf("Name = %q, want the target's name", w.Name())
	}
}

func TestWrappersCompose(t *testing.T) {
	order := []string{}
	outerW := func(tag string) WrapperFunc {
		return func(wrapped Callable, instance interface{}, args Args, kwargs KWArgs) (interface{}, error) {
			order = append(order, tag)
			return wrapped(args, kwargs)
		}
	}

	inner, _ := New(add, outerW("inner"))
	outer, err := New(inner, outerW("outer"))
	if err != nil {
		t.Fatalf("wrapping a wrapper: %v", err)
	}

	got, err := outer.Call(Args{2, 3}, nil)
	if err != nil || got != 5 {
		t.Fatalf("Call = %v, %v", got, err)
	}
	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("wrapper order = %v", order)
	}
}

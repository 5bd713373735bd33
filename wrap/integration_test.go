package wrap

import (
	"fmt"
	"testing"

	"github.com/chazu/veneer/proxy"
)

// account is a "class" whose wrapped method lives in a field, the way a
// decorated method sits on a decorated class.
type account struct {
	Owner   string
	Deposit *CallableWrapper
}

func deposit(a *account, amount int) string {
	return fmt.Sprintf("%s+%d", a.Owner, amount)
}

// Attribute access through a proxy binds wrapped callables to the
// receiver: fetching obj.Deposit yields a bound wrapper whose instance
// is obj, and calling it routes through the wrapper function.
func TestProxyAccessBindsWrappedMethods(t *testing.T) {
	cap := &capture{}
	w, err := New(deposit, cap.wrapper)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	obj := &account{Owner: "alice", Deposit: w}
	p := proxy.New(obj)

	got, err := p.Get("Deposit")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	bound, ok := got.(*BoundCallableWrapper)
	if !ok {
		t.Fatalf("Get returned %T, want *BoundCallableWrapper", got)
	}
	if bound.Instance() != obj {
		t.Errorf("instance = %v, want the proxy target", bound.Instance())
	}

	res, err := bound.Call(Args{50}, nil)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if res != "alice+50" {
		t.Errorf("Call = %v, want alice+50", res)
	}
	if cap.instance != obj {
		t.Error("wrapper saw a different instance than the access receiver")
	}
}

// The end-to-end shape without a proxy: decorate, bind, call.
func TestDecoratedMethodEndToEnd(t *testing.T) {
	cap := &capture{}
	w, _ := New(greet, cap.wrapper)

	obj := &greeter{Prefix: "hi"}
	bound, err := w.Bind(obj)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	got, err := bound.Call(Args{"Sam"}, nil)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got != "hi Sam" {
		t.Errorf("greet = %v, want hi Sam", got)
	}
	if !cap.called {
		t.Error("wrapper did not run")
	}
	if cap.instance != obj {
		t.Error("wrapper saw a different instance than the access receiver")
	}
}

package introspect

import (
	"testing"
)

func TestLoadStdlibPackage(t *testing.T) {
	sigs, err := Load("errors", []string{"New"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(sigs) != 1 {
		t.Fatalf("got %d signatures, want 1", len(sigs))
	}

	sig := sigs[0]
	if sig.Name != "New" {
		t.Errorf("Name = %q", sig.Name)
	}
	if len(sig.Params) != 1 || sig.Params[0].Type != "string" {
		t.Errorf("Params = %+v", sig.Params)
	}
	// Static extraction recovers parameter names, unlike reflection.
	if sig.Params[0].Name != "text" {
		t.Errorf("param name = %q, want text", sig.Params[0].Name)
	}
	if !sig.ReturnsErr {
		t.Error("errors.New returns error")
	}
}

func TestLoadUnfiltered(t *testing.T) {
	sigs, err := Load("errors", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	names := map[string]bool{}
	for _, s := range sigs {
		names[s.Name] = true
	}
	for _, want := range []string{"New", "Is", "As", "Unwrap"} {
		if !names[want] {
			t.Errorf("missing exported function %s", want)
		}
	}
}

func TestLoadBadPath(t *testing.T) {
	if _, err := Load("no/such/package/exists", nil); err == nil {
		t.Error("expected an error for an unresolvable import path")
	}
}

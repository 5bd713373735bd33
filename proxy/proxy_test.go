package proxy

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// Test fixtures
// ---------------------------------------------------------------------------

type account struct {
	Owner   string
	Balance int
	notes   string
}

func (a *account) Deposit(n int) int {
	a.Balance += n
	return a.Balance
}

func (a account) Describe() string {
	return a.Owner
}

// ---------------------------------------------------------------------------
// Construction and identity
// ---------------------------------------------------------------------------

func TestUnwrapIdentity(t *testing.T) {
	acct := &account{Owner: "alice"}
	p := New(acct)

	if p.Unwrap() != acct {
		t.Error("Unwrap should return the original target by identity")
	}
}

func TestWrapStoresNoTargetState(t *testing.T) {
	acct := &account{Owner: "alice", Balance: 10}
	p := New(acct)

	// Wrapping must not touch the target.
	if acct.Balance != 10 || acct.Owner != "alice" {
		t.Errorf("target mutated by construction: %+v", acct)
	}
	if p.State() != nil {
		t.Error("fresh proxy should have nil state")
	}
}

func TestWrapperState(t *testing.T) {
	p := New(&account{})
	p.SetState("memo")
	if p.State() != "memo" {
		t.Errorf("State() = %v, want memo", p.State())
	}
}

// ---------------------------------------------------------------------------
// Attribute get
// ---------------------------------------------------------------------------

func TestGetField(t *testing.T) {
	p := New(&account{Owner: "alice", Balance: 3})

	got, err := p.Get("Owner")
	if err != nil {
		t.Fatalf("Get(Owner): %v", err)
	}
	if got != "alice" {
		t.Errorf("Get(Owner) = %v, want alice", got)
	}
}

func TestGetMethod(t *testing.T) {
	acct := &account{Owner: "bob"}
	p := New(acct)

	got, err := p.Get("Describe")
	if err != nil {
		t.Fatalf("Get(Describe): %v", err)
	}
	fn, ok := got.(func() string)
	if !ok {
		t.Fatalf("Get(Describe) = %T, want func() string", got)
	}
	if fn() != "bob" {
		t.Errorf("bound method returned %q, want bob", fn())
	}
}

func TestGetMapEntry(t *testing.T) {
	p := New(map[string]int{"retries": 3})

	got, err := p.Get("retries")
	if err != nil {
		t.Fatalf("Get(retries): %v", err)
	}
	if got != 3 {
		t.Errorf("Get(retries) = %v, want 3", got)
	}
}

func TestGetMissingAttribute(t *testing.T) {
	p := New(&account{})

	_, err := p.Get("Nope")
	if err == nil {
		t.Fatal("expected error for missing attribute")
	}
	var ae *AttributeError
	if !errors.As(err, &ae) {
		t.Fatalf("expected AttributeError, got %T", err)
	}
	if ae.Op != "get" || ae.Name != "Nope" {
		t.Errorf("AttributeError = %+v", ae)
	}
}

func TestGetUnexportedFieldIsInvisible(t *testing.T) {
	p := New(&account{notes: "hidden"})
	if _, err := p.Get("notes"); err == nil {
		t.Error("unexported fields must not resolve")
	}
}

// ---------------------------------------------------------------------------
// Attribute set/delete: mutation through the proxy hits the target
// ---------------------------------------------------------------------------

func TestSetMutatesOriginal(t *testing.T) {
	acct := &account{}
	p := New(acct)

	if err := p.Set("Balance", 5); err != nil {
		t.Fatalf("Set(Balance): %v", err)
	}
	if acct.Balance != 5 {
		t.Errorf("target.Balance = %d, want 5 (mutation must be visible on original)", acct.Balance)
	}
}

func TestSetOnValueTargetFails(t *testing.T) {
	p := New(account{Owner: "alice"})

	err := p.Set("Owner", "eve")
	if err == nil {
		t.Fatal("setting a field on a non-pointer target should fail")
	}
	if !IsAttributeError(err) {
		t.Errorf("expected AttributeError, got %T", err)
	}
}

func TestSetMapEntry(t *testing.T) {
	m := map[string]int{}
	p := New(m)

	if err := p.Set("limit", 9); err != nil {
		t.Fatalf("Set(limit): %v", err)
	}
	if m["limit"] != 9 {
		t.Errorf("m[limit] = %d, want 9", m["limit"])
	}
}

func TestDeleteMapEntry(t *testing.T) {
	m := map[string]int{"tmp": 1}
	p := New(m)

	if err := p.Delete("tmp"); err != nil {
		t.Fatalf("Delete(tmp): %v", err)
	}
	if _, ok := m["tmp"]; ok {
		t.Error("entry should be deleted from the original map")
	}
}

func TestDeleteStructFieldFails(t *testing.T) {
	p := New(&account{})
	if err := p.Delete("Owner"); !IsAttributeError(err) {
		t.Errorf("expected AttributeError, got %v", err)
	}
}

func TestHas(t *testing.T) {
	p := New(&account{})
	if !p.Has("Owner") || !p.Has("Deposit") {
		t.Error("Has should resolve fields and methods")
	}
	if p.Has("Ghost") {
		t.Error("Has(Ghost) should be false")
	}
}

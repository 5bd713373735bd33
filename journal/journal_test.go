package journal

import (
	"errors"
	"testing"
	"time"
)

type memSink struct {
	got []*Invocation
	err error
}

func (s *memSink) Record(inv *Invocation) error {
	if s.err != nil {
		return s.err
	}
	s.got = append(s.got, inv)
	return nil
}

func TestRecordAssignsSequence(t *testing.T) {
	j := NewJournal()

	for i := 0; i < 3; i++ {
		if err := j.Record(&Invocation{Wrapper: "w"}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries := j.Entries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for i, e := range entries {
		if e.Seq != uint64(i+1) {
			t.Errorf("entry %d seq = %d, want %d", i, e.Seq, i+1)
		}
	}
	if j.Len() != 3 {
		t.Errorf("Len = %d, want 3", j.Len())
	}
}

func TestSinkFanOut(t *testing.T) {
	a := &memSink{}
	b := &memSink{}
	j := NewJournal(a, b)

	if err := j.Record(&Invocation{Wrapper: "w"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if len(a.got) != 1 || len(b.got) != 1 {
		t.Errorf("sinks received %d, %d records, want 1 each", len(a.got), len(b.got))
	}
	if a.got[0].Seq != 1 {
		t.Errorf("sink saw seq %d, want 1", a.got[0].Seq)
	}
}

func TestSinkErrorSurfaces(t *testing.T) {
	boom := errors.New("disk full")
	j := NewJournal(&memSink{err: boom})

	err := j.Record(&Invocation{Wrapper: "w"})
	if !errors.Is(err, boom) {
		t.Errorf("Record error = %v, want wrapped sink error", err)
	}
	// The entry is still appended; only sink delivery failed.
	if j.Len() != 1 {
		t.Errorf("Len = %d, want 1", j.Len())
	}
}

func TestEntriesIsASnapshot(t *testing.T) {
	j := NewJournal()
	_ = j.Record(&Invocation{Wrapper: "w"})

	snap := j.Entries()
	_ = j.Record(&Invocation{Wrapper: "w"})

	if len(snap) != 1 {
		t.Errorf("snapshot grew to %d entries", len(snap))
	}
}

func TestRender(t *testing.T) {
	if got := Render(nil); got != "nil" {
		t.Errorf("Render(nil) = %q", got)
	}
	if got := Render(42); got != "42" {
		t.Errorf("Render(42) = %q", got)
	}
	if got := Render(time.Duration(0)); got != "0s" {
		t.Errorf("Render(0s) = %q", got)
	}

	all := RenderAll([]interface{}{1, "x", nil})
	if len(all) != 3 || all[0] != "1" || all[1] != "x" || all[2] != "nil" {
		t.Errorf("RenderAll = %v", all)
	}
}

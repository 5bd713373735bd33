// Package journal records invocations of wrapped callables. Records
// flow through an in-memory log with pluggable sinks; the CBOR wire
// format serves export and exchange, the SQLite store serves
// persistence and offline inspection.
package journal

import (
	"fmt"
	"sync"
	"time"
)

// Invocation is one recorded call through a wrapper.
type Invocation struct {
	Seq      uint64        `cbor:"1,keyasint"`
	Wrapper  string        `cbor:"2,keyasint"`           // diagnostic name of the wrapped target
	Binding  string        `cbor:"3,keyasint"`           // binding context classification
	Instance string        `cbor:"4,keyasint,omitempty"` // rendered binding instance
	Args     []string      `cbor:"5,keyasint,omitempty"` // rendered positional arguments
	Start    time.Time     `cbor:"6,keyasint"`
	Duration time.Duration `cbor:"7,keyasint"`
	Err      string        `cbor:"8,keyasint,omitempty"`
}

// Sink receives invocation records as they are appended.
type Sink interface {
	Record(inv *Invocation) error
}

// Journal is an append-only invocation log. Appends are serialized;
// sinks run inline in append order.
type Journal struct {
	mu      sync.Mutex
	seq     uint64
	entries []*Invocation
	sinks   []Sink
}

// NewJournal creates a journal fanning out to the given sinks.
func NewJournal(sinks ...Sink) *Journal {
	return &Journal{sinks: sinks}
}

// Record assigns the next sequence number, appends the record, and
// forwards it to every sink.
func (j *Journal) Record(inv *Invocation) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.seq++
	inv.Seq = j.seq
	j.entries = append(j.entries, inv)

	for _, s := range j.sinks {
		if err := s.Record(inv); err != nil {
			return fmt.Errorf("journal: sink: %w", err)
		}
	}
	return nil
}

// Entries returns a snapshot of the recorded invocations.
func (j *Journal) Entries() []*Invocation {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]*Invocation, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of recorded invocations.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

// Render formats an arbitrary value for storage in a record.
func Render(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", v)
}

// RenderAll formats a slice of values.
func RenderAll(vs []interface{}) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = Render(v)
	}
	return out
}

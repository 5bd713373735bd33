package journal

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode uses canonical options for deterministic encoding.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("journal: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalInvocation serializes a single record to CBOR bytes.
func MarshalInvocation(inv *Invocation) ([]byte, error) {
	return cborEncMode.Marshal(inv)
}

// UnmarshalInvocation deserializes a record from CBOR bytes.
func UnmarshalInvocation(data []byte) (*Invocation, error) {
	var inv Invocation
	if err := cbor.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("journal: unmarshal invocation: %w", err)
	}
	return &inv, nil
}

// MarshalLog serializes a sequence of records to CBOR bytes.
func MarshalLog(invs []*Invocation) ([]byte, error) {
	return cborEncMode.Marshal(invs)
}

// UnmarshalLog deserializes a sequence of records from CBOR bytes.
func UnmarshalLog(data []byte) ([]*Invocation, error) {
	var invs []*Invocation
	if err := cbor.Unmarshal(data, &invs); err != nil {
		return nil, fmt.Errorf("journal: unmarshal log: %w", err)
	}
	return invs, nil
}

// WriteLog exports a journal's entries to w in the wire format.
func WriteLog(w io.Writer, j *Journal) error {
	data, err := MarshalLog(j.Entries())
	if err != nil {
		return fmt.Errorf("journal: write log: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ReadLog imports entries from the wire format.
func ReadLog(r io.Reader) ([]*Invocation, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("journal: read log: %w", err)
	}
	return UnmarshalLog(data)
}

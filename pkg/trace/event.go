package trace

import (
	"fmt"
	"time"
)

// Op is the kind of bus transfer.
type Op uint8

const (
	// OpWrite is a plain write.
	OpWrite Op = 0
	// OpWriteRead is a write followed by a read in one transaction.
	OpWriteRead Op = 1
)

func (o Op) String() string {
	switch o {
	case OpWrite:
		return "WRITE"
	case OpWriteRead:
		return "WRITE_READ"
	default:
		return "UNKNOWN"
	}
}

// Event is one bus transfer. CBOR encoding uses integer keys.
type Event struct {
	// Timestamp when the transfer started.
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the recorder that captured the event (UUID).
	SessionID string `cbor:"2,keyasint"`

	Op   Op    `cbor:"3,keyasint"`
	Addr uint8 `cbor:"4,keyasint"`

	// Tx holds the written bytes, Rx the bytes read back.
	Tx []byte `cbor:"5,keyasint,omitempty"`
	Rx []byte `cbor:"6,keyasint,omitempty"`

	// Err is the bus error text, empty on success.
	Err string `cbor:"7,keyasint,omitempty"`

	Duration time.Duration `cbor:"8,keyasint"`
}

// Failed reports whether the bus reported an error.
func (e Event) Failed() bool {
	return e.Err != ""
}

func (e Event) String() string {
	s := fmt.Sprintf("%s 0x%02x tx=% x", e.Op, e.Addr, e.Tx)
	if e.Op == OpWriteRead {
		s += fmt.Sprintf(" rx=% x", e.Rx)
	}
	if e.Failed() {
		s += " err=" + e.Err
	}
	return s
}

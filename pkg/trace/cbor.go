package trace

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// traceMagic is the self-described CBOR tag (55799) written at the start of a
// new trace file. Files without it are read as well.
var traceMagic = []byte{0xd9, 0xd9, 0xf7}

// ErrBadEvent is returned for a decoded event that no recorder can produce.
var ErrBadEvent = errors.New("malformed trace event")

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.EncOptions{
		Sort:          cbor.SortCoreDeterministic,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("trace: cbor encoder options: %v", err))
	}

	// trace files are only written by FileLogger, so duplicate keys mean a
	// corrupt file
	decMode, err = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("trace: cbor decoder options: %v", err))
	}
}

// EncodeEvent encodes one bus transfer.
func EncodeEvent(event Event) ([]byte, error) {
	if err := checkEvent(event); err != nil {
		return nil, err
	}
	return encMode.Marshal(event)
}

// DecodeEvent decodes one bus transfer and checks that it is well formed.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := decMode.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	if err := checkEvent(event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// checkEvent rejects events that do not describe a bus transfer: an unknown
// operation, a write carrying read bytes, or a transfer without bytes.
func checkEvent(e Event) error {
	switch e.Op {
	case OpWrite:
		if len(e.Rx) != 0 {
			return fmt.Errorf("write with %d read bytes: %w", len(e.Rx), ErrBadEvent)
		}
	case OpWriteRead:
	default:
		return fmt.Errorf("operation %d: %w", e.Op, ErrBadEvent)
	}
	if len(e.Tx) == 0 {
		return fmt.Errorf("%s without register bytes: %w", e.Op, ErrBadEvent)
	}
	return nil
}

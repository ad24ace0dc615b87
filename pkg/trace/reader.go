package trace

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// Reader streams events back from a trace file.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
}

func NewReader(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(f)
	if head, err := br.Peek(len(traceMagic)); err == nil && bytes.Equal(head, traceMagic) {
		br.Discard(len(traceMagic))
	}
	return &Reader{
		file:    f,
		decoder: decMode.NewDecoder(br),
	}, nil
}

// Next returns the next event, or io.EOF at the end of the file.
func (r *Reader) Next() (Event, error) {
	var event Event
	if err := r.decoder.Decode(&event); err != nil {
		if errors.Is(err, io.EOF) {
			return Event{}, io.EOF
		}
		return Event{}, err
	}
	if err := checkEvent(event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// All reads the remaining events. On error it returns the events read so far.
func (r *Reader) All() ([]Event, error) {
	var out []Event
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
}

func (r *Reader) Close() error {
	return r.file.Close()
}

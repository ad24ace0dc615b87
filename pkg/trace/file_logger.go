package trace

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileLogger appends events to a trace file. A new file starts with
// traceMagic; later sessions append their events after the ones already there.
type FileLogger struct {
	mu     sync.Mutex
	file   *os.File
	buf    *bufio.Writer
	enc    *cbor.Encoder
	err    error
	closed bool
}

// NewFileLogger opens path for appending, creating it if needed.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	l := &FileLogger{file: f, buf: bufio.NewWriter(f)}
	l.enc = encMode.NewEncoder(l.buf)
	if info.Size() == 0 {
		l.buf.Write(traceMagic)
	}
	return l, nil
}

// Log appends event. Each event reaches the file in one write. The first
// failure stops the logger and is kept for Err; the traced transfer is not
// affected.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || l.err != nil {
		return
	}
	if err := l.enc.Encode(event); err != nil {
		l.err = fmt.Errorf("failed to encode trace event: %w", err)
		return
	}
	if err := l.buf.Flush(); err != nil {
		l.err = fmt.Errorf("failed to write trace event: %w", err)
	}
}

// Err returns the failure that stopped the logger, if any.
func (l *FileLogger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Close flushes and closes the file. Later Log calls are ignored.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	if err := l.buf.Flush(); err != nil && l.err == nil {
		l.err = fmt.Errorf("failed to write trace file: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close trace file: %w", err)
	}
	return l.err
}

var _ Logger = (*FileLogger)(nil)

package trace

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mbalug7/go-icm42605/pkg/hal"
)

// Recorder is a bus that forwards every transfer to another bus and logs it.
// Bus errors are returned unchanged.
type Recorder struct {
	bus     hal.Bus
	logger  Logger
	session string
	now     func() time.Time
}

// NewRecorder wraps bus. A nil logger discards events.
func NewRecorder(bus hal.Bus, logger Logger) *Recorder {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Recorder{
		bus:     bus,
		logger:  logger,
		session: uuid.New().String(),
		now:     time.Now,
	}
}

// SessionID returns the id stamped on every event of this recorder.
func (r *Recorder) SessionID() string {
	return r.session
}

func (r *Recorder) Write(addr uint8, w []byte) error {
	start := r.now()
	err := r.bus.Write(addr, w)
	r.logger.Log(newEvent(r.session, OpWrite, addr, w, nil, err, start, r.now()))
	return err
}

func (r *Recorder) WriteRead(addr uint8, w []byte, rx []byte) error {
	start := r.now()
	err := r.bus.WriteRead(addr, w, rx)
	r.logger.Log(newEvent(r.session, OpWriteRead, addr, w, rx, err, start, r.now()))
	return err
}

var _ hal.Bus = (*Recorder)(nil)

// ContextRecorder is the context-aware form of Recorder.
type ContextRecorder struct {
	bus     hal.ContextBus
	logger  Logger
	session string
	now     func() time.Time
}

func NewContextRecorder(bus hal.ContextBus, logger Logger) *ContextRecorder {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &ContextRecorder{
		bus:     bus,
		logger:  logger,
		session: uuid.New().String(),
		now:     time.Now,
	}
}

func (r *ContextRecorder) SessionID() string {
	return r.session
}

func (r *ContextRecorder) Write(ctx context.Context, addr uint8, w []byte) error {
	start := r.now()
	err := r.bus.Write(ctx, addr, w)
	r.logger.Log(newEvent(r.session, OpWrite, addr, w, nil, err, start, r.now()))
	return err
}

func (r *ContextRecorder) WriteRead(ctx context.Context, addr uint8, w []byte, rx []byte) error {
	start := r.now()
	err := r.bus.WriteRead(ctx, addr, w, rx)
	r.logger.Log(newEvent(r.session, OpWriteRead, addr, w, rx, err, start, r.now()))
	return err
}

var _ hal.ContextBus = (*ContextRecorder)(nil)

func newEvent(session string, op Op, addr uint8, tx, rx []byte, err error, start, end time.Time) Event {
	e := Event{
		Timestamp: start,
		SessionID: session,
		Op:        op,
		Addr:      addr,
		Tx:        append([]byte(nil), tx...),
		Duration:  end.Sub(start),
	}
	if err != nil {
		e.Err = err.Error()
		return e
	}
	if op == OpWriteRead {
		e.Rx = append([]byte(nil), rx...)
	}
	return e
}

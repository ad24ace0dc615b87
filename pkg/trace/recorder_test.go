package trace

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNack = errors.New("nack")

type memLogger struct {
	mu     sync.Mutex
	events []Event
}

func (l *memLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

type stubBus struct {
	rx  []byte
	err error
}

func (b *stubBus) Write(addr uint8, w []byte) error {
	return b.err
}

func (b *stubBus) WriteRead(addr uint8, w []byte, r []byte) error {
	copy(r, b.rx)
	return b.err
}

type stubContextBus struct {
	*stubBus
}

func (b stubContextBus) Write(ctx context.Context, addr uint8, w []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.stubBus.Write(addr, w)
}

func (b stubContextBus) WriteRead(ctx context.Context, addr uint8, w []byte, r []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.stubBus.WriteRead(addr, w, r)
}

func fixedClock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func TestRecorder(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	bus := &stubBus{rx: []byte{0x42}}
	logger := &memLogger{}
	rec := NewRecorder(bus, logger)
	rec.now = fixedClock(start, time.Millisecond)

	_, err := uuid.Parse(rec.SessionID())
	require.NoError(t, err)

	w := []byte{0x76, 0x00}
	require.NoError(t, rec.Write(0x68, w))
	w[1] = 0x01

	r := make([]byte, 1)
	require.NoError(t, rec.WriteRead(0x68, []byte{0x75}, r))
	assert.Equal(t, []byte{0x42}, r)

	require.Len(t, logger.events, 2)
	assert.Equal(t, Event{
		Timestamp: start,
		SessionID: rec.SessionID(),
		Op:        OpWrite,
		Addr:      0x68,
		Tx:        []byte{0x76, 0x00},
		Duration:  time.Millisecond,
	}, logger.events[0])
	assert.Equal(t, OpWriteRead, logger.events[1].Op)
	assert.Equal(t, []byte{0x75}, logger.events[1].Tx)
	assert.Equal(t, []byte{0x42}, logger.events[1].Rx)
	assert.False(t, logger.events[1].Failed())
}

func TestRecorderPassesErrors(t *testing.T) {
	bus := &stubBus{rx: []byte{0x42}, err: errNack}
	logger := &memLogger{}
	rec := NewRecorder(bus, logger)

	assert.Equal(t, errNack, rec.Write(0x68, []byte{0x4e, 0x00}))
	assert.Equal(t, errNack, rec.WriteRead(0x68, []byte{0x75}, make([]byte, 1)))

	require.Len(t, logger.events, 2)
	for _, e := range logger.events {
		assert.True(t, e.Failed())
		assert.Equal(t, "nack", e.Err)
		assert.Nil(t, e.Rx)
	}
}

func TestRecorderNilLogger(t *testing.T) {
	rec := NewRecorder(&stubBus{}, nil)
	assert.NoError(t, rec.Write(0x68, []byte{0x00, 0x00}))
}

func TestContextRecorder(t *testing.T) {
	logger := &memLogger{}
	rec := NewContextRecorder(stubContextBus{&stubBus{rx: []byte{0x01, 0x02}}}, logger)
	assert.NotEqual(t, NewContextRecorder(stubContextBus{&stubBus{}}, nil).SessionID(), rec.SessionID())

	r := make([]byte, 2)
	require.NoError(t, rec.WriteRead(context.Background(), 0x69, []byte{0x1d}, r))
	assert.Equal(t, []byte{0x01, 0x02}, r)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, rec.Write(ctx, 0x69, []byte{0x76, 0x00}), context.Canceled)

	require.Len(t, logger.events, 2)
	assert.Equal(t, uint8(0x69), logger.events[0].Addr)
	assert.Equal(t, context.Canceled.Error(), logger.events[1].Err)
}

func TestMultiLogger(t *testing.T) {
	a, b := &memLogger{}, &memLogger{}
	NewMultiLogger(a, NoopLogger{}, b).Log(Event{Op: OpWrite})
	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)
}

package common

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mazen160/go-random"
	"github.com/mbalug7/go-icm42605/pkg/hal"
	"github.com/warthog618/gpiod"
)

// ErrInterruptTimeout is returned by Wait when no edge arrives in time.
var ErrInterruptTimeout = errors.New("interrupt wait timed out")

// edgeWaiters fans one edge event out to every goroutine waiting for it.
type edgeWaiters struct {
	mu      sync.Mutex
	waiters map[string]chan struct{} // waiters keyed by a random id
	level   func() (int, error)      // current line level, 1 is asserted
	timeout time.Duration
}

func newEdgeWaiters(level func() (int, error), timeout time.Duration) *edgeWaiters {
	return &edgeWaiters{
		waiters: make(map[string]chan struct{}),
		level:   level,
		timeout: timeout,
	}
}

func (obj *edgeWaiters) notify() {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	for id, ch := range obj.waiters {
		close(ch)
		delete(obj.waiters, id)
	}
}

func (obj *edgeWaiters) register() (string, chan struct{}, error) {
	id, err := random.String(16)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate random id: %w", err)
	}
	ch := make(chan struct{})
	obj.mu.Lock()
	obj.waiters[id] = ch
	obj.mu.Unlock()
	return id, ch, nil
}

func (obj *edgeWaiters) forget(id string) {
	obj.mu.Lock()
	delete(obj.waiters, id)
	obj.mu.Unlock()
}

func (obj *edgeWaiters) pending() int {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	return len(obj.waiters)
}

func (obj *edgeWaiters) wait(ctx context.Context) error {
	// a latched interrupt that is already asserted produces no new edge
	val, err := obj.level()
	if err != nil {
		return fmt.Errorf("failed to read interrupt line: %w", err)
	}
	if val == 1 {
		return nil
	}
	id, ch, err := obj.register()
	if err != nil {
		return err
	}
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		obj.forget(id)
		return ctx.Err()
	case <-time.After(obj.timeout):
		obj.forget(id)
		return ErrInterruptTimeout
	}
}

// InterruptLine waits for rising edges on a GPIO line wired to INT1 or INT2.
// The interrupt pin must be configured active high.
type InterruptLine struct {
	chip    *gpiod.Chip
	line    *gpiod.Line
	waiters *edgeWaiters
}

// NewInterruptLine requests offset on gpioChip, e.g. "gpiochip0", with
// rising edge detection.
func NewInterruptLine(gpioChip string, offset int, timeout time.Duration) (*InterruptLine, error) {
	c, err := gpiod.NewChip(gpioChip, gpiod.WithConsumer("icm42605"))
	if err != nil {
		return nil, fmt.Errorf("failed to create GPIO chip: %w", err)
	}
	obj := &InterruptLine{chip: c}
	obj.waiters = newEdgeWaiters(obj.value, timeout)
	obj.line, err = c.RequestLine(offset, gpiod.WithEventHandler(obj.onRisingEdge), gpiod.WithRisingEdge)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to request interrupt GPIO line: %w", err)
	}
	return obj, nil
}

func (obj *InterruptLine) value() (int, error) {
	return obj.line.Value()
}

func (obj *InterruptLine) onRisingEdge(evt gpiod.LineEvent) {
	obj.waiters.notify()
}

// Wait blocks until the next rising edge, the timeout or the end of ctx.
func (obj *InterruptLine) Wait(ctx context.Context) error {
	return obj.waiters.wait(ctx)
}

func (obj *InterruptLine) Close() error {
	err := obj.line.Close()
	if err != nil {
		return fmt.Errorf("failed to close interrupt line: %w", err)
	}
	err = obj.chip.Close()
	if err != nil {
		return fmt.Errorf("failed to close GPIO chip: %w", err)
	}
	return nil
}

var _ hal.InterruptLine = (*InterruptLine)(nil)

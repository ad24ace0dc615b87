package common

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/tarm/serial"
)

// USB to I2C adapters that speak the I2C_AD1 command set.
const (
	cmdI2CAD1 byte = 0x55
	// bridgeMaxData is the largest block the adapter moves in one command.
	bridgeMaxData = 64
)

var (
	// ErrBridgeNack is returned when the adapter reports a failed write.
	ErrBridgeNack = errors.New("i2c bridge: write not acknowledged")
	// ErrBridgeTimeout is returned when the adapter answers with fewer bytes than expected.
	ErrBridgeTimeout = errors.New("i2c bridge: response timeout")
	// ErrBridgeTransfer is returned for transfers the adapter cannot express.
	ErrBridgeTransfer = errors.New("i2c bridge: unsupported transfer")
)

type port interface {
	io.ReadWriteCloser
	Flush() error
}

// SerialBridge is a two-wire bus behind a USB serial adapter. Every transfer
// addresses a register: the first written byte is the register offset.
type SerialBridge struct {
	mu   sync.Mutex
	port port
}

// NewSerialBridge opens tty, e.g. "/dev/ttyUSB0". timeout bounds the wait for
// every response.
func NewSerialBridge(tty string, baud int, timeout time.Duration) (*SerialBridge, error) {
	config := &serial.Config{
		Name:        tty,
		Baud:        baud,
		Size:        8,
		Parity:      serial.ParityNone,
		ReadTimeout: timeout,
	}
	p, err := serial.OpenPort(config)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port, err: %w", err)
	}
	return newSerialBridge(p), nil
}

func newSerialBridge(p port) *SerialBridge {
	return &SerialBridge{port: p}
}

func (obj *SerialBridge) Close() error {
	err := obj.port.Close()
	if err != nil {
		return fmt.Errorf("failed to close serial stream: %w", err)
	}
	return nil
}

// Write sends w[1:] to register w[0] of the device at addr.
func (obj *SerialBridge) Write(addr uint8, w []byte) error {
	if len(w) < 1 || len(w)-1 > bridgeMaxData {
		return fmt.Errorf("write of %d bytes: %w", len(w), ErrBridgeTransfer)
	}
	obj.mu.Lock()
	defer obj.mu.Unlock()

	frame := make([]byte, 0, 4+len(w)-1)
	frame = append(frame, cmdI2CAD1, addr<<1, w[0], byte(len(w)-1))
	frame = append(frame, w[1:]...)
	if err := obj.send(frame); err != nil {
		return err
	}
	status := make([]byte, 1)
	if err := obj.receive(status); err != nil {
		return err
	}
	if status[0] == 0 {
		return ErrBridgeNack
	}
	return nil
}

// WriteRead reads len(r) bytes from register w[0] of the device at addr. The
// adapter issues the register write and the read as one transaction.
func (obj *SerialBridge) WriteRead(addr uint8, w []byte, r []byte) error {
	if len(w) != 1 || len(r) < 1 || len(r) > bridgeMaxData {
		return fmt.Errorf("write %d, read %d bytes: %w", len(w), len(r), ErrBridgeTransfer)
	}
	obj.mu.Lock()
	defer obj.mu.Unlock()

	if err := obj.send([]byte{cmdI2CAD1, addr<<1 | 0x01, w[0], byte(len(r))}); err != nil {
		return err
	}
	return obj.receive(r)
}

func (obj *SerialBridge) send(frame []byte) error {
	// drop whatever a previous timed out command left behind
	if err := obj.port.Flush(); err != nil {
		return fmt.Errorf("failed to flush serial stream: %w", err)
	}
	if _, err := obj.port.Write(frame); err != nil {
		return fmt.Errorf("failed to send data, err: %w", err)
	}
	return nil
}

func (obj *SerialBridge) receive(buf []byte) error {
	got := 0
	for got < len(buf) {
		n, err := obj.port.Read(buf[got:])
		got += n
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to receive data: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("got %d of %d bytes: %w", got, len(buf), ErrBridgeTimeout)
		}
	}
	return nil
}

// ContextBridge is the context-aware view of a SerialBridge.
type ContextBridge struct {
	*SerialBridge
}

func (obj ContextBridge) Write(ctx context.Context, addr uint8, w []byte) error {
	w = append([]byte(nil), w...)
	return runContext(ctx, nil, func([]byte) error {
		return obj.SerialBridge.Write(addr, w)
	})
}

func (obj ContextBridge) WriteRead(ctx context.Context, addr uint8, w []byte, r []byte) error {
	w = append([]byte(nil), w...)
	return runContext(ctx, r, func(buf []byte) error {
		return obj.SerialBridge.WriteRead(addr, w, buf)
	})
}

package common

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePort answers reads from in and collects writes in out.
type fakePort struct {
	in      bytes.Buffer
	out     bytes.Buffer
	flushes int
	closed  bool
}

func (p *fakePort) Read(b []byte) (int, error)  { return p.in.Read(b) }
func (p *fakePort) Write(b []byte) (int, error) { return p.out.Write(b) }

func (p *fakePort) Flush() error {
	p.flushes++
	return nil
}

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

func TestSerialBridgeWrite(t *testing.T) {
	p := &fakePort{}
	p.in.WriteByte(0x01)
	b := newSerialBridge(p)

	require.NoError(t, b.Write(0x68, []byte{0x4e, 0x0f}))
	assert.Equal(t, []byte{0x55, 0xd0, 0x4e, 0x01, 0x0f}, p.out.Bytes())
	assert.Equal(t, 1, p.flushes)
}

func TestSerialBridgeWriteNack(t *testing.T) {
	p := &fakePort{}
	p.in.WriteByte(0x00)
	err := newSerialBridge(p).Write(0x68, []byte{0x76, 0x01})
	assert.ErrorIs(t, err, ErrBridgeNack)
}

func TestSerialBridgeWriteRead(t *testing.T) {
	p := &fakePort{}
	p.in.Write([]byte{0x80, 0x00})
	b := newSerialBridge(p)

	r := make([]byte, 2)
	require.NoError(t, b.WriteRead(0x69, []byte{0x1d}, r))
	assert.Equal(t, []byte{0x55, 0xd3, 0x1d, 0x02}, p.out.Bytes())
	assert.Equal(t, []byte{0x80, 0x00}, r)
}

func TestSerialBridgeTimeout(t *testing.T) {
	p := &fakePort{}
	p.in.WriteByte(0x42)
	b := newSerialBridge(p)

	err := b.WriteRead(0x68, []byte{0x1d}, make([]byte, 2))
	assert.ErrorIs(t, err, ErrBridgeTimeout)

	err = b.Write(0x68, []byte{0x4e, 0x00})
	assert.ErrorIs(t, err, ErrBridgeTimeout)
}

func TestSerialBridgeUnsupportedTransfer(t *testing.T) {
	tests := []struct {
		name string
		run  func(b *SerialBridge) error
	}{
		{"empty write", func(b *SerialBridge) error { return b.Write(0x68, nil) }},
		{"long write", func(b *SerialBridge) error { return b.Write(0x68, make([]byte, 66)) }},
		{"two byte register", func(b *SerialBridge) error {
			return b.WriteRead(0x68, []byte{0x1d, 0x00}, make([]byte, 1))
		}},
		{"empty read", func(b *SerialBridge) error { return b.WriteRead(0x68, []byte{0x1d}, nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakePort{}
			assert.ErrorIs(t, tt.run(newSerialBridge(p)), ErrBridgeTransfer)
			assert.Zero(t, p.out.Len())
		})
	}
}

func TestSerialBridgeClose(t *testing.T) {
	p := &fakePort{}
	require.NoError(t, newSerialBridge(p).Close())
	assert.True(t, p.closed)
}

func TestContextBridge(t *testing.T) {
	p := &fakePort{}
	p.in.Write([]byte{0x42})
	b := ContextBridge{newSerialBridge(p)}

	r := make([]byte, 1)
	require.NoError(t, b.WriteRead(context.Background(), 0x68, []byte{0x75}, r))
	assert.Equal(t, []byte{0x42}, r)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.out.Reset()
	err := b.Write(ctx, 0x68, []byte{0x76, 0x00})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, p.out.Len())
}

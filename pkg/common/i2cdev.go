package common

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	// i2cRdwr is the I2C_RDWR request of linux/i2c-dev.h.
	i2cRdwr    = 0x0707
	// i2cMsgRead marks a read message of an I2C_RDWR transfer.
	i2cMsgRead = 0x0001
)

// i2cMsg mirrors struct i2c_msg of linux/i2c.h.
type i2cMsg struct {
	addr  uint16
	flags uint16
	len   uint16
	buf   uintptr
}

// i2cRdwrData mirrors struct i2c_rdwr_ioctl_data of linux/i2c-dev.h.
type i2cRdwrData struct {
	msgs  uintptr
	nmsgs uint32
}

// I2CDev is a two-wire bus on a Linux i2c-dev character device.
type I2CDev struct {
	mu sync.Mutex
	fd int
}

// NewI2CDev opens dev, e.g. "/dev/i2c-1".
func NewI2CDev(dev string) (*I2CDev, error) {
	fd, err := unix.Open(dev, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", dev, err)
	}
	return &I2CDev{fd: fd}, nil
}

func (obj *I2CDev) Close() error {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	if err := unix.Close(obj.fd); err != nil {
		return fmt.Errorf("failed to close i2c device: %w", err)
	}
	return nil
}

// Write sends w to the device at addr.
func (obj *I2CDev) Write(addr uint8, w []byte) error {
	return obj.transfer(message(addr, 0, w))
}

// WriteRead sends w and reads r back with a repeated start in between.
func (obj *I2CDev) WriteRead(addr uint8, w []byte, r []byte) error {
	return obj.transfer(message(addr, 0, w), message(addr, i2cMsgRead, r))
}

func message(addr uint8, flags uint16, buf []byte) i2cMsg {
	m := i2cMsg{addr: uint16(addr), flags: flags, len: uint16(len(buf))}
	if len(buf) > 0 {
		m.buf = uintptr(unsafe.Pointer(&buf[0]))
	}
	return m
}

func (obj *I2CDev) transfer(msgs ...i2cMsg) error {
	obj.mu.Lock()
	defer obj.mu.Unlock()

	data := i2cRdwrData{
		msgs:  uintptr(unsafe.Pointer(&msgs[0])),
		nmsgs: uint32(len(msgs)),
	}
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(obj.fd), i2cRdwr, uintptr(unsafe.Pointer(&data)))
	runtime.KeepAlive(msgs)
	if errno != 0 {
		return fmt.Errorf("i2c transfer to 0x%02x: %w", msgs[0].addr, errno)
	}
	return nil
}

// ContextI2CDev is the context-aware view of an I2CDev.
type ContextI2CDev struct {
	*I2CDev
}

func (obj ContextI2CDev) Write(ctx context.Context, addr uint8, w []byte) error {
	w = append([]byte(nil), w...)
	return runContext(ctx, nil, func([]byte) error {
		return obj.I2CDev.Write(addr, w)
	})
}

func (obj ContextI2CDev) WriteRead(ctx context.Context, addr uint8, w []byte, r []byte) error {
	w = append([]byte(nil), w...)
	return runContext(ctx, r, func(buf []byte) error {
		return obj.I2CDev.WriteRead(addr, w, buf)
	})
}

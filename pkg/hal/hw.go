package hal

import (
	"context"
	"errors"
)

// MaxPayload is the largest number of data bytes a single register write carries.
const MaxPayload = 2

var (
	// ErrPayloadTooLong is returned when a register write carries more than MaxPayload bytes.
	ErrPayloadTooLong = errors.New("register payload too long")
	// ErrSizeMismatch is returned when the data length does not match the register width.
	ErrSizeMismatch = errors.New("register data length does not match register size")
)

// Bus is a blocking two-wire bus. Errors are driver specific and are handed to
// the caller unchanged.
type Bus interface {
	// Write sends w to the device at the 7-bit address addr.
	Write(addr uint8, w []byte) error
	// WriteRead sends w and reads len(r) bytes back in one combined transaction.
	WriteRead(addr uint8, w []byte, r []byte) error
}

// ContextBus is the context-aware form of Bus. A call returns when the
// transaction completes or when ctx is done, whichever happens first.
type ContextBus interface {
	Write(ctx context.Context, addr uint8, w []byte) error
	WriteRead(ctx context.Context, addr uint8, w []byte, r []byte) error
}

// RegisterInterface reads and writes whole registers.
type RegisterInterface interface {
	WriteRegister(addr RegAddress, sizeBits int, data []byte) error
	ReadRegister(addr RegAddress, sizeBits int, data []byte) error
}

// ContextRegisterInterface is the context-aware form of RegisterInterface.
type ContextRegisterInterface interface {
	WriteRegister(ctx context.Context, addr RegAddress, sizeBits int, data []byte) error
	ReadRegister(ctx context.Context, addr RegAddress, sizeBits int, data []byte) error
}

// CheckPayload validates a register write before it reaches the bus.
func CheckPayload(sizeBits int, data []byte) error {
	if len(data) > MaxPayload {
		return ErrPayloadTooLong
	}
	if sizeBits != len(data)*8 {
		return ErrSizeMismatch
	}
	return nil
}

// DeviceAddress returns the 7-bit bus address of a device whose address pin
// selects the lowest bit of base.
func DeviceAddress(base uint8, sel bool) uint8 {
	if sel {
		return (base | 0x01) & 0x7f
	}
	return base & 0x7f
}

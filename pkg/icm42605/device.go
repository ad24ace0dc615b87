package icm42605

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mbalug7/go-icm42605/pkg/hal"
	"github.com/mbalug7/go-icm42605/pkg/regs"
)

// ErrUnexpectedDevice is returned when WHO_AM_I does not identify an ICM-42605.
var ErrUnexpectedDevice = errors.New("unexpected WHO_AM_I value")

// softResetDelay is the time the device needs before it accepts register
// writes after a soft reset.
const softResetDelay = time.Millisecond

// RawData is one sample of the sensor data registers in device counts.
type RawData struct {
	Temperature int16
	Accel       [3]int16
	Gyro        [3]int16
}

// Celsius converts the temperature sample.
func (r RawData) Celsius() float64 {
	return float64(r.Temperature)/132.48 + 25
}

var sampleRegisters = []*regs.Register{
	TEMP_DATA,
	ACCEL_DATA_X, ACCEL_DATA_Y, ACCEL_DATA_Z,
	GYRO_DATA_X, GYRO_DATA_Y, GYRO_DATA_Z,
}

func (r *RawData) set(i int, v int32) {
	switch {
	case i == 0:
		r.Temperature = int16(v)
	case i < 4:
		r.Accel[i-1] = int16(v)
	default:
		r.Gyro[i-4] = int16(v)
	}
}

// dumpable reports whether Dump reads r. FIFO_DATA is skipped since reading it
// pops the FIFO.
func dumpable(r *regs.Register) bool {
	return r.Readable() && r != FIFO_DATA
}

func checkWhoAmI(id uint32) error {
	if uint8(id) != WHO_AM_I_VALUE {
		return fmt.Errorf("got 0x%02x, want 0x%02x: %w", id, WHO_AM_I_VALUE, ErrUnexpectedDevice)
	}
	return nil
}

// Device hands out register handles for one ICM-42605 on a blocking bus.
type Device struct {
	ri *Interface
}

// NewDevice returns the device at 0x68|ad0. No bus traffic takes place.
func NewDevice(bus hal.Bus, ad0 bool) *Device {
	return &Device{ri: NewInterface(bus, ad0)}
}

// Interface returns the register interface the device uses.
func (obj *Device) Interface() *Interface {
	return obj.ri
}

// Handle returns the handle of r.
func (obj *Device) Handle(r *regs.Register) *regs.Handle {
	return regs.NewHandle(r, obj.ri)
}

// WhoAmI reads the device identity.
func (obj *Device) WhoAmI() (uint8, error) {
	id, err := WhoAmIValue.Read(obj.Handle(WHO_AM_I))
	return uint8(id), err
}

// Verify checks that the device on the bus is an ICM-42605.
func (obj *Device) Verify() error {
	id, err := WhoAmIValue.Read(obj.Handle(WHO_AM_I))
	if err != nil {
		return fmt.Errorf("failed to read WHO_AM_I: %w", err)
	}
	return checkWhoAmI(id)
}

// SoftReset resets every register to its default value and waits until the
// device is ready again.
func (obj *Device) SoftReset() error {
	v := regs.NewValue(DEVICE_CONFIG)
	if err := DeviceConfigSoftReset.Set(&v, true); err != nil {
		return err
	}
	if err := obj.Handle(DEVICE_CONFIG).Write(v); err != nil {
		return fmt.Errorf("failed to write soft reset: %w", err)
	}
	time.Sleep(softResetDelay)
	return nil
}

// ReadRaw reads the temperature, accelerometer and gyroscope registers.
func (obj *Device) ReadRaw() (RawData, error) {
	var data RawData
	for i, r := range sampleRegisters {
		v, err := SensorDataValue.Read(obj.Handle(r))
		if err != nil {
			return RawData{}, fmt.Errorf("failed to read %s: %w", r.Name, err)
		}
		data.set(i, v)
	}
	return data, nil
}

// Dump reads every readable register of bank, or of all banks when bank is
// nil, ordered by bank and offset.
func (obj *Device) Dump(bank *uint8) ([]regs.Value, error) {
	var out []regs.Value
	for _, r := range dumpList(bank) {
		v, err := obj.Handle(r).Read()
		if err != nil {
			return out, fmt.Errorf("failed to read %s: %w", r.Name, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func dumpList(bank *uint8) []*regs.Register {
	banks := Registers.Banks()
	if bank != nil {
		banks = []uint8{*bank}
	}
	var out []*regs.Register
	for _, b := range banks {
		for _, r := range Registers.InBank(b) {
			if dumpable(r) {
				out = append(out, r)
			}
		}
	}
	return out
}

// ContextDevice is the context-aware form of Device.
type ContextDevice struct {
	ri *ContextInterface
}

// NewContextDevice returns the device at 0x68|ad0. No bus traffic takes place.
func NewContextDevice(bus hal.ContextBus, ad0 bool) *ContextDevice {
	return &ContextDevice{ri: NewContextInterface(bus, ad0)}
}

func (obj *ContextDevice) Interface() *ContextInterface {
	return obj.ri
}

func (obj *ContextDevice) Handle(r *regs.Register) *regs.ContextHandle {
	return regs.NewContextHandle(r, obj.ri)
}

func (obj *ContextDevice) WhoAmI(ctx context.Context) (uint8, error) {
	id, err := WhoAmIValue.ReadContext(ctx, obj.Handle(WHO_AM_I))
	return uint8(id), err
}

func (obj *ContextDevice) Verify(ctx context.Context) error {
	id, err := WhoAmIValue.ReadContext(ctx, obj.Handle(WHO_AM_I))
	if err != nil {
		return fmt.Errorf("failed to read WHO_AM_I: %w", err)
	}
	return checkWhoAmI(id)
}

func (obj *ContextDevice) SoftReset(ctx context.Context) error {
	v := regs.NewValue(DEVICE_CONFIG)
	if err := DeviceConfigSoftReset.Set(&v, true); err != nil {
		return err
	}
	if err := obj.Handle(DEVICE_CONFIG).Write(ctx, v); err != nil {
		return fmt.Errorf("failed to write soft reset: %w", err)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(softResetDelay):
		return nil
	}
}

func (obj *ContextDevice) ReadRaw(ctx context.Context) (RawData, error) {
	var data RawData
	for i, r := range sampleRegisters {
		v, err := SensorDataValue.ReadContext(ctx, obj.Handle(r))
		if err != nil {
			return RawData{}, fmt.Errorf("failed to read %s: %w", r.Name, err)
		}
		data.set(i, v)
	}
	return data, nil
}

func (obj *ContextDevice) Dump(ctx context.Context, bank *uint8) ([]regs.Value, error) {
	var out []regs.Value
	for _, r := range dumpList(bank) {
		v, err := obj.Handle(r).Read(ctx)
		if err != nil {
			return out, fmt.Errorf("failed to read %s: %w", r.Name, err)
		}
		out = append(out, v)
	}
	return out, nil
}

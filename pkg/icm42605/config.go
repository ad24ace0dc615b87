package icm42605

import (
	"errors"
	"fmt"

	"github.com/mbalug7/go-icm42605/pkg/regs"
)

// ErrConfigUnchanged is returned when the staged configuration equals the one
// on the device.
var ErrConfigUnchanged = errors.New("new register setup is the same as the setup on the chip")

type stagedRegister struct {
	reg     *regs.Register
	current regs.Value
	staged  regs.Value
}

// ConfigBuilder collects field changes and writes them with one write per
// touched register. Registers are read the first time one of their fields is
// staged, so fields that are not mentioned keep their device values.
type ConfigBuilder struct {
	device *Device
	staged []*stagedRegister
	err    error
}

// NewConfigBuilder constructs ConfigBuilder
func NewConfigBuilder(device *Device) *ConfigBuilder {
	return &ConfigBuilder{device: device}
}

func (obj *ConfigBuilder) stage(r *regs.Register, set func(v *regs.Value) error) *ConfigBuilder {
	if obj.err != nil {
		return obj
	}
	var sr *stagedRegister
	for _, s := range obj.staged {
		if s.reg == r {
			sr = s
			break
		}
	}
	if sr == nil {
		v, err := obj.device.Handle(r).Read()
		if err != nil {
			obj.err = fmt.Errorf("failed to read %s: %w", r.Name, err)
			return obj
		}
		sr = &stagedRegister{reg: r, current: v, staged: v}
		obj.staged = append(obj.staged, sr)
	}
	if err := set(&sr.staged); err != nil {
		obj.err = fmt.Errorf("failed to stage %s: %w", r.Name, err)
	}
	return obj
}

// PWR_MGMT0 params

// GyroMode sets the gyroscope power mode
func (obj *ConfigBuilder) GyroMode(mode GyroMode) *ConfigBuilder {
	return obj.stage(PWR_MGMT0, func(v *regs.Value) error { return PwrMgmt0GyroMode.Set(v, mode) })
}

// AccelMode sets the accelerometer power mode
func (obj *ConfigBuilder) AccelMode(mode AccelMode) *ConfigBuilder {
	return obj.stage(PWR_MGMT0, func(v *regs.Value) error { return PwrMgmt0AccelMode.Set(v, mode) })
}

// TemperatureSensor enables or disables the temperature sensor
func (obj *ConfigBuilder) TemperatureSensor(enabled bool) *ConfigBuilder {
	return obj.stage(PWR_MGMT0, func(v *regs.Value) error { return PwrMgmt0TempDis.Set(v, !enabled) })
}

// GYRO_CONFIG0 params

func (obj *ConfigBuilder) GyroFullScale(fs GyroFullScale) *ConfigBuilder {
	return obj.stage(GYRO_CONFIG0, func(v *regs.Value) error { return GyroConfig0FullScale.Set(v, fs) })
}

func (obj *ConfigBuilder) GyroDataRate(odr DataRate) *ConfigBuilder {
	return obj.stage(GYRO_CONFIG0, func(v *regs.Value) error { return GyroConfig0DataRate.Set(v, odr) })
}

// ACCEL_CONFIG0 params

func (obj *ConfigBuilder) AccelFullScale(fs AccelFullScale) *ConfigBuilder {
	return obj.stage(ACCEL_CONFIG0, func(v *regs.Value) error { return AccelConfig0FullScale.Set(v, fs) })
}

func (obj *ConfigBuilder) AccelDataRate(odr DataRate) *ConfigBuilder {
	return obj.stage(ACCEL_CONFIG0, func(v *regs.Value) error { return AccelConfig0DataRate.Set(v, odr) })
}

// Filters

// GyroFilterOrder sets the order of the gyroscope UI filter
func (obj *ConfigBuilder) GyroFilterOrder(order UiFilterOrder) *ConfigBuilder {
	return obj.stage(GYRO_CONFIG1, func(v *regs.Value) error { return GyroConfig1UiFilterOrder.Set(v, order) })
}

// AccelFilterOrder sets the order of the accelerometer UI filter
func (obj *ConfigBuilder) AccelFilterOrder(order UiFilterOrder) *ConfigBuilder {
	return obj.stage(ACCEL_CONFIG1, func(v *regs.Value) error { return AccelConfig1UiFilterOrder.Set(v, order) })
}

// INT1 pin

// Int1 sets up the INT1 pin. Latched mode keeps the pin asserted until the
// interrupt is cleared, push-pull drives both levels, activeHigh selects the
// polarity.
func (obj *ConfigBuilder) Int1(latched bool, pushPull bool, activeHigh bool) *ConfigBuilder {
	return obj.stage(INT_CONFIG, func(v *regs.Value) error {
		if err := IntConfigInt1Mode.Set(v, latched); err != nil {
			return err
		}
		if err := IntConfigInt1DriveCircuit.Set(v, pushPull); err != nil {
			return err
		}
		return IntConfigInt1Polarity.Set(v, activeHigh)
	})
}

// DataReadyInt1 routes the data ready interrupt to INT1
func (obj *ConfigBuilder) DataReadyInt1(enabled bool) *ConfigBuilder {
	return obj.stage(INT_SOURCE0, func(v *regs.Value) error { return IntSource0DrdyInt1.Set(v, enabled) })
}

// DataReadyClear selects what clears the data ready interrupt
func (obj *ConfigBuilder) DataReadyClear(opt IntClearOption) *ConfigBuilder {
	return obj.stage(INT_CONFIG0, func(v *regs.Value) error { return IntConfig0DrdyClear.Set(v, opt) })
}

// FIFO

func (obj *ConfigBuilder) FifoMode(mode FifoMode) *ConfigBuilder {
	return obj.stage(FIFO_CONFIG, func(v *regs.Value) error { return FifoConfigFifoMode.Set(v, mode) })
}

// FifoSources selects the packets that go into the FIFO
func (obj *ConfigBuilder) FifoSources(accel bool, gyro bool, temp bool) *ConfigBuilder {
	return obj.stage(FIFO_CONFIG1, func(v *regs.Value) error {
		if err := FifoConfig1AccelEn.Set(v, accel); err != nil {
			return err
		}
		if err := FifoConfig1GyroEn.Set(v, gyro); err != nil {
			return err
		}
		return FifoConfig1TempEn.Set(v, temp)
	})
}

// FifoWatermark sets the FIFO threshold interrupt level, 0-4095
func (obj *ConfigBuilder) FifoWatermark(level uint32) *ConfigBuilder {
	return obj.stage(FIFO_CONFIG2, func(v *regs.Value) error { return FifoConfig2Wm.Set(v, level) })
}

// Field stages a field by register and field name. It is what the command
// line tool uses for arbitrary fields.
func (obj *ConfigBuilder) Field(r *regs.Register, field string, fv regs.FieldValue) *ConfigBuilder {
	return obj.stage(r, func(v *regs.Value) error {
		f, ok := r.Field(field)
		if !ok {
			return fmt.Errorf("%s has no field %q: %w", r.Name, field, regs.ErrForeignField)
		}
		return v.Set(f, fv)
	})
}

// Staged returns the values that Write would write.
func (obj *ConfigBuilder) Staged() []regs.Value {
	out := make([]regs.Value, 0, len(obj.staged))
	for _, s := range obj.staged {
		out = append(out, s.staged)
	}
	return out
}

// Write writes every staged register that differs from the device. It
// returns the first staging error, if any, without touching the device.
func (obj *ConfigBuilder) Write() error {
	if obj.err != nil {
		return obj.err
	}
	changed := 0
	for _, s := range obj.staged {
		if s.staged.Uint32() == s.current.Uint32() {
			continue
		}
		if err := obj.device.Handle(s.reg).Write(s.staged); err != nil {
			return fmt.Errorf("failed to write %s to the chip: %w", s.reg.Name, err)
		}
		s.current = s.staged
		changed++
	}
	if changed == 0 {
		return ErrConfigUnchanged
	}
	return nil
}

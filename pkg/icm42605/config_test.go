package icm42605

import (
	"testing"

	"github.com/mbalug7/go-icm42605/pkg/regs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilderWritesChangedRegisters(t *testing.T) {
	bus := newFakeBus()
	bus.set(0, 0x4f, 0x06)
	dev := NewDevice(bus, false)

	err := NewConfigBuilder(dev).
		GyroFullScale(GYRO_FS_2000_DPS).
		GyroDataRate(ODR_1000_HZ).
		AccelMode(ACCEL_LOW_NOISE).
		GyroMode(GYRO_LOW_NOISE).
		Write()
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{0x4e, 0x0f}}, bus.dataWrites())
	assert.Equal(t, byte(0x06), bus.get(0, 0x4f))
}

func TestConfigBuilderUnchanged(t *testing.T) {
	bus := newFakeBus()
	bus.set(0, 0x4f, 0x06)
	dev := NewDevice(bus, false)

	err := NewConfigBuilder(dev).GyroDataRate(ODR_1000_HZ).Write()
	assert.ErrorIs(t, err, ErrConfigUnchanged)
	assert.Empty(t, bus.dataWrites())
}

func TestConfigBuilderKeepsUnstagedFields(t *testing.T) {
	bus := newFakeBus()
	bus.set(0, 0x14, 0x38)
	bus.set(0, 0x60, 0x00, 0x00)
	dev := NewDevice(bus, false)

	cb := NewConfigBuilder(dev).Int1(false, true, true).FifoWatermark(0x123)
	require.NoError(t, cb.Write())
	assert.Equal(t, [][]byte{{0x14, 0x3b}, {0x60, 0x23, 0x01}}, bus.dataWrites())

	staged := cb.Staged()
	require.Len(t, staged, 2)
	wm, err := FifoConfig2Wm.Get(staged[1])
	require.NoError(t, err)
	assert.Equal(t, uint32(0x123), wm)
}

func TestConfigBuilderStagingError(t *testing.T) {
	bus := newFakeBus()
	dev := NewDevice(bus, false)

	err := NewConfigBuilder(dev).
		FifoWatermark(5000).
		AccelMode(ACCEL_LOW_NOISE).
		Write()
	assert.ErrorIs(t, err, regs.ErrValueRange)
	assert.Empty(t, bus.dataWrites())
	assert.Len(t, bus.ops, 2)
}

func TestConfigBuilderReadError(t *testing.T) {
	bus := newFakeBus()
	bus.fail = func(op busOp) error {
		if !op.write {
			return errBus
		}
		return nil
	}
	dev := NewDevice(bus, false)

	err := NewConfigBuilder(dev).TemperatureSensor(false).Write()
	assert.ErrorIs(t, err, errBus)
	assert.Empty(t, bus.dataWrites())
}

func TestConfigBuilderField(t *testing.T) {
	bus := newFakeBus()
	dev := NewDevice(bus, false)

	fv, err := regs.ParseFieldValue(FifoConfigFifoMode.Field, "stream")
	require.NoError(t, err)
	require.NoError(t, NewConfigBuilder(dev).Field(FIFO_CONFIG, "fifo_mode", fv).Write())
	assert.Equal(t, [][]byte{{0x16, 0x40}}, bus.dataWrites())

	err = NewConfigBuilder(dev).Field(FIFO_CONFIG, "missing", fv).Write()
	assert.ErrorIs(t, err, regs.ErrForeignField)

	err = NewConfigBuilder(dev).Field(WHO_AM_I, "whoami", regs.UintValue(1)).Write()
	assert.ErrorIs(t, err, regs.ErrAccessViolation)
}

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mbalug7/go-icm42605/pkg/icm42605"
	"github.com/mbalug7/go-icm42605/pkg/regs"
	"github.com/mbalug7/go-icm42605/pkg/trace"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memBus is a register file per bank that follows bank select writes.
type memBus struct {
	bank   uint8
	mem    [256][256]byte
	writes [][]byte
}

func (b *memBus) Write(addr uint8, w []byte) error {
	if len(w) == 2 && w[0] == icm42605.REG_BANK_SEL {
		b.bank = w[1]
		return nil
	}
	b.writes = append(b.writes, append([]byte(nil), w...))
	copy(b.mem[b.bank][w[0]:], w[1:])
	return nil
}

func (b *memBus) WriteRead(addr uint8, w []byte, r []byte) error {
	copy(r, b.mem[b.bank][w[0]:])
	return nil
}

// pulses is an interrupt line that fires n times and then reports ctx as done.
type pulses struct {
	n int
}

func (p *pulses) Wait(ctx context.Context) error {
	if p.n == 0 {
		return context.Canceled
	}
	p.n--
	return nil
}

func (p *pulses) Close() error {
	return nil
}

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments(icm42605.PWR_MGMT0, []string{"GYRO_MODE=lownoise", "temp_dis=true"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "gyro_mode", got[0].field.Name)
	assert.Equal(t, regs.EnumValue(regs.V("LowNoise", 3)), got[0].value)
	assert.Equal(t, regs.BoolValue(true), got[1].value)

	_, err = parseAssignments(icm42605.PWR_MGMT0, []string{"gyro_mode"})
	assert.Error(t, err)
	_, err = parseAssignments(icm42605.PWR_MGMT0, []string{"speed=1"})
	assert.Error(t, err)
	_, err = parseAssignments(icm42605.PWR_MGMT0, []string{"gyro_mode=fast"})
	assert.ErrorIs(t, err, regs.ErrValueRange)
}

func TestLookupRegister(t *testing.T) {
	r, err := lookupRegister("gyro_config0")
	require.NoError(t, err)
	assert.Same(t, icm42605.GYRO_CONFIG0, r)

	_, err = lookupRegister("GYRO_CONFIG9")
	assert.Error(t, err)
}

func TestTraceCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bus.trace")
	fl, err := trace.NewFileLogger(path)
	require.NoError(t, err)
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	fl.Log(trace.Event{Timestamp: start, Op: trace.OpWrite, Addr: 0x68, Tx: []byte{0x76, 0x00}})
	fl.Log(trace.Event{Timestamp: start, Op: trace.OpWriteRead, Addr: 0x68, Tx: []byte{0x75}, Rx: []byte{0x42}})
	require.NoError(t, fl.Close())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"trace", path})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "0x68 BANK_SEL 0")
	assert.Contains(t, out.String(), "0x68 READ WHO_AM_I{whoami:66}")
}

func TestWriteFields(t *testing.T) {
	bus := &memBus{}
	bus.mem[0][0x4e] = 0x20
	dev := icm42605.NewDevice(bus, false)
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	a, err := parseAssignments(icm42605.PWR_MGMT0, []string{"accel_mode=LowNoise"})
	require.NoError(t, err)
	require.NoError(t, writeFields(cmd, dev, icm42605.PWR_MGMT0, a))
	assert.Equal(t, [][]byte{{0x4e, 0x23}}, bus.writes)
	assert.Contains(t, out.String(), "accel_mode:LowNoise")

	// unchanged values are not written again
	require.NoError(t, writeFields(cmd, dev, icm42605.PWR_MGMT0, a))
	assert.Len(t, bus.writes, 1)

	a, err = parseAssignments(icm42605.SIGNAL_PATH_RESET, []string{"fifo_flush=1"})
	require.NoError(t, err)
	require.NoError(t, writeFields(cmd, dev, icm42605.SIGNAL_PATH_RESET, a))
	assert.Equal(t, []byte{0x4b, 0x02}, bus.writes[1])
}

func TestSampleLoop(t *testing.T) {
	bus := &memBus{}
	bus.mem[0][0x1f] = 0x01
	dev := icm42605.NewDevice(bus, false)
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, sampleLoop(context.Background(), cmd, dev, &pulses{n: 2}))
	assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("accel    256")))
}

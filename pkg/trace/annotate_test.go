package trace

import (
	"testing"

	"github.com/mbalug7/go-icm42605/pkg/hal"
	"github.com/mbalug7/go-icm42605/pkg/regs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBankSel = 0x76

var (
	testConfig = &regs.Register{
		Name:     "CONFIG",
		Address:  hal.NewRegAddress(0, 0x03),
		SizeBits: 8,
		Fields:   []*regs.Field{regs.Uint("rate", 0, 4)},
	}
	testStatic = &regs.Register{
		Name:     "STATIC",
		Address:  hal.NewRegAddress(1, 0x03),
		SizeBits: 8,
		Fields:   []*regs.Field{regs.Bool("disable", 0)},
	}
	testMap = regs.MustMap(testConfig, testStatic)
)

func TestAnnotateBanks(t *testing.T) {
	events := []Event{
		{Op: OpWriteRead, Addr: 0x68, Tx: []byte{0x03}, Rx: []byte{0x05}},
		{Op: OpWrite, Addr: 0x68, Tx: []byte{testBankSel, 0x01}},
		{Op: OpWriteRead, Addr: 0x68, Tx: []byte{0x03}, Rx: []byte{0x01}},
		{Op: OpWrite, Addr: 0x68, Tx: []byte{testBankSel, 0x00}},
		{Op: OpWrite, Addr: 0x68, Tx: []byte{0x03, 0x07}},
		{Op: OpWrite, Addr: 0x69, Tx: []byte{0x03, 0x07}},
		{Op: OpWrite, Addr: 0x68, Tx: []byte{testBankSel, 0x01}, Err: "nack"},
		{Op: OpWriteRead, Addr: 0x68, Tx: []byte{0x03}, Rx: []byte{0x01}},
	}

	got := AnnotateAll(testMap, testBankSel, events)
	require.Len(t, got, len(events))

	// nothing is known before the first bank select
	assert.Nil(t, got[0].Register)
	assert.Equal(t, -1, got[0].Bank)

	assert.True(t, got[1].BankSelect)
	assert.Equal(t, 1, got[1].Bank)

	assert.Same(t, testStatic, got[2].Register)
	require.NotNil(t, got[2].Value)
	disabled, err := got[2].Value.GetByName("disable")
	require.NoError(t, err)
	assert.True(t, disabled.Bool)

	assert.Same(t, testConfig, got[4].Register)
	rate, err := got[4].Value.GetByName("rate")
	require.NoError(t, err)
	assert.Equal(t, uint32(7), rate.Uint)

	// banks are tracked per device
	assert.Nil(t, got[5].Register)

	assert.True(t, got[6].BankSelect)
	assert.Equal(t, -1, got[6].Bank)
	assert.Nil(t, got[7].Register)
}

func TestAnnotationString(t *testing.T) {
	got := AnnotateAll(testMap, testBankSel, []Event{
		{Op: OpWrite, Addr: 0x68, Tx: []byte{testBankSel, 0x00}},
		{Op: OpWrite, Addr: 0x68, Tx: []byte{0x03, 0x02}},
		{Op: OpWriteRead, Addr: 0x68, Tx: []byte{0x03}, Err: "nack"},
		{Op: OpWriteRead, Addr: 0x68, Tx: []byte{0x03}, Rx: []byte{0x01, 0x02}},
		{Op: OpWrite, Addr: 0x68, Tx: []byte{testBankSel, 0x02}, Err: "nack"},
	})

	assert.Equal(t, "0x68 BANK_SEL 0", got[0].String())
	assert.Equal(t, "0x68 WRITE CONFIG{rate:2}", got[1].String())
	assert.Equal(t, "0x68 READ CONFIG failed: nack", got[2].String())
	assert.Equal(t, "0x68 READ CONFIG", got[3].String())
	assert.Equal(t, "0x68 BANK_SEL 2 failed: nack", got[4].String())
}

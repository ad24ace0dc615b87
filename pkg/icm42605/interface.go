package icm42605

import (
	"context"

	"github.com/mbalug7/go-icm42605/pkg/hal"
)

const (
	// I2C_BASE_ADDRESS is the device address with AD0 tied low.
	I2C_BASE_ADDRESS uint8 = 0x68
	// REG_BANK_SEL is present at the same offset in every bank.
	REG_BANK_SEL uint8 = 0x76
	// WHO_AM_I_VALUE is the identity the ICM-42605 reports.
	WHO_AM_I_VALUE uint8 = 0x42
)

// noBank is kept while the selected bank is unknown. It is outside the byte
// range so that the first access always selects a bank.
const noBank = -1

// bankState tracks the bank the device was last switched to.
type bankState struct {
	current int
}

func newBankState() bankState {
	return bankState{current: noBank}
}

// needsSelect reports whether bank must be selected before the next access.
func (s *bankState) needsSelect(bank uint8) bool {
	return s.current != int(bank)
}

// selected records the outcome of a bank select write.
func (s *bankState) selected(bank uint8, err error) {
	if err != nil {
		s.current = noBank
		return
	}
	s.current = int(bank)
}

func bankSelectFrame(bank uint8) []byte {
	return []byte{REG_BANK_SEL, bank}
}

func writeFrame(addr hal.RegAddress, data []byte) []byte {
	frame := make([]byte, 0, 1+hal.MaxPayload)
	frame = append(frame, addr.ToByte())
	return append(frame, data...)
}

// Interface moves register bytes over a blocking bus and switches banks as
// needed. It is not safe for concurrent use, and a bus must be driven by
// exactly one Interface since the selected bank is cached here.
type Interface struct {
	bus   hal.Bus
	addr  uint8
	state bankState
}

// NewInterface returns the register interface of the device at 0x68|ad0.
func NewInterface(bus hal.Bus, ad0 bool) *Interface {
	return &Interface{
		bus:   bus,
		addr:  hal.DeviceAddress(I2C_BASE_ADDRESS, ad0),
		state: newBankState(),
	}
}

// Address returns the 7-bit device address.
func (i *Interface) Address() uint8 {
	return i.addr
}

func (i *Interface) setBank(bank uint8) error {
	if !i.state.needsSelect(bank) {
		return nil
	}
	err := i.bus.Write(i.addr, bankSelectFrame(bank))
	i.state.selected(bank, err)
	return err
}

// WriteRegister writes data to the register at addr in one bus write.
func (i *Interface) WriteRegister(addr hal.RegAddress, sizeBits int, data []byte) error {
	if err := hal.CheckPayload(sizeBits, data); err != nil {
		return err
	}
	if err := i.setBank(addr.Bank()); err != nil {
		return err
	}
	return i.bus.Write(i.addr, writeFrame(addr, data))
}

// ReadRegister fills data from the register at addr with one combined
// write-then-read transaction.
func (i *Interface) ReadRegister(addr hal.RegAddress, sizeBits int, data []byte) error {
	if sizeBits != len(data)*8 {
		return hal.ErrSizeMismatch
	}
	if err := i.setBank(addr.Bank()); err != nil {
		return err
	}
	return i.bus.WriteRead(i.addr, []byte{addr.ToByte()}, data)
}

// ContextInterface is the context-aware form of Interface. The cached bank is
// only updated once the bank select write has returned successfully.
type ContextInterface struct {
	bus   hal.ContextBus
	addr  uint8
	state bankState
}

// NewContextInterface returns the register interface of the device at 0x68|ad0.
func NewContextInterface(bus hal.ContextBus, ad0 bool) *ContextInterface {
	return &ContextInterface{
		bus:   bus,
		addr:  hal.DeviceAddress(I2C_BASE_ADDRESS, ad0),
		state: newBankState(),
	}
}

// Address returns the 7-bit device address.
func (i *ContextInterface) Address() uint8 {
	return i.addr
}

func (i *ContextInterface) setBank(ctx context.Context, bank uint8) error {
	if !i.state.needsSelect(bank) {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	err := i.bus.Write(ctx, i.addr, bankSelectFrame(bank))
	i.state.selected(bank, err)
	return err
}

func (i *ContextInterface) WriteRegister(ctx context.Context, addr hal.RegAddress, sizeBits int, data []byte) error {
	if err := hal.CheckPayload(sizeBits, data); err != nil {
		return err
	}
	if err := i.setBank(ctx, addr.Bank()); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return i.bus.Write(ctx, i.addr, writeFrame(addr, data))
}

func (i *ContextInterface) ReadRegister(ctx context.Context, addr hal.RegAddress, sizeBits int, data []byte) error {
	if sizeBits != len(data)*8 {
		return hal.ErrSizeMismatch
	}
	if err := i.setBank(ctx, addr.Bank()); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return i.bus.WriteRead(ctx, i.addr, []byte{addr.ToByte()}, data)
}

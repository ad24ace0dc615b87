package icm42605

import (
	"context"
	"errors"

	"github.com/mbalug7/go-icm42605/pkg/hal"
)

var errBus = errors.New("bus error")

type busOp struct {
	write bool
	// bank is the bank selected when the operation was issued.
	bank  uint8
	addr  uint8
	tx    []byte
	n     int
}

// fakeBus behaves like the device: it keeps one register file per bank and
// honors bank select writes.
type fakeBus struct {
	mem  map[uint8]*[256]byte
	bank uint8
	ops  []busOp

	// fail returns the error for an operation, nil lets it through.
	fail func(op busOp) error
}

func newFakeBus() *fakeBus {
	return &fakeBus{mem: map[uint8]*[256]byte{}}
}

func (b *fakeBus) bankMem(bank uint8) *[256]byte {
	m, ok := b.mem[bank]
	if !ok {
		m = &[256]byte{}
		b.mem[bank] = m
	}
	return m
}

func (b *fakeBus) set(bank uint8, offset uint8, data ...byte) {
	copy(b.bankMem(bank)[offset:], data)
}

func (b *fakeBus) get(bank uint8, offset uint8) byte {
	return b.bankMem(bank)[offset]
}

func (b *fakeBus) Write(addr uint8, w []byte) error {
	op := busOp{write: true, bank: b.bank, addr: addr, tx: append([]byte(nil), w...)}
	b.ops = append(b.ops, op)
	if b.fail != nil {
		if err := b.fail(op); err != nil {
			return err
		}
	}
	if len(w) == 2 && w[0] == REG_BANK_SEL {
		b.bank = w[1]
		return nil
	}
	copy(b.bankMem(b.bank)[w[0]:], w[1:])
	return nil
}

func (b *fakeBus) WriteRead(addr uint8, w []byte, r []byte) error {
	op := busOp{bank: b.bank, addr: addr, tx: append([]byte(nil), w...), n: len(r)}
	b.ops = append(b.ops, op)
	if b.fail != nil {
		if err := b.fail(op); err != nil {
			return err
		}
	}
	copy(r, b.bankMem(b.bank)[w[0]:])
	return nil
}

// selects returns the banks selected so far.
func (b *fakeBus) selects() []uint8 {
	var out []uint8
	for _, op := range b.ops {
		if op.write && len(op.tx) == 2 && op.tx[0] == REG_BANK_SEL {
			out = append(out, op.tx[1])
		}
	}
	return out
}

// reads returns the register addresses read so far.
func (b *fakeBus) reads() []hal.RegAddress {
	var out []hal.RegAddress
	for _, op := range b.ops {
		if !op.write {
			out = append(out, hal.NewRegAddress(op.bank, op.tx[0]))
		}
	}
	return out
}

func (b *fakeBus) reset() {
	b.ops = nil
}

func failSelect(op busOp) error {
	if op.write && op.tx[0] == REG_BANK_SEL {
		return errBus
	}
	return nil
}

type fakeContextBus struct {
	*fakeBus
}

func (b fakeContextBus) Write(ctx context.Context, addr uint8, w []byte) error {
	return b.fakeBus.Write(addr, w)
}

func (b fakeContextBus) WriteRead(ctx context.Context, addr uint8, w []byte, r []byte) error {
	return b.fakeBus.WriteRead(addr, w, r)
}

// dataWrites returns the register writes, leaving out bank selects.
func (b *fakeBus) dataWrites() [][]byte {
	var out [][]byte
	for _, op := range b.ops {
		if op.write && !(len(op.tx) == 2 && op.tx[0] == REG_BANK_SEL) {
			out = append(out, op.tx)
		}
	}
	return out
}

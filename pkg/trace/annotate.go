package trace

import (
	"fmt"

	"github.com/mbalug7/go-icm42605/pkg/hal"
	"github.com/mbalug7/go-icm42605/pkg/regs"
)

// Annotation is an event resolved against a register map.
type Annotation struct {
	Event Event

	// BankSelect is set for writes to the bank select register.
	BankSelect bool
	// Bank is the bank the transfer addressed, -1 when not known.
	Bank int

	// Register is nil when the transfer could not be resolved.
	Register *regs.Register
	// Value holds the register bytes that were written or read.
	Value *regs.Value
}

func (a Annotation) String() string {
	e := a.Event
	switch {
	case a.BankSelect:
		if e.Failed() {
			return fmt.Sprintf("0x%02x BANK_SEL %d failed: %s", e.Addr, e.Tx[1], e.Err)
		}
		return fmt.Sprintf("0x%02x BANK_SEL %d", e.Addr, e.Tx[1])
	case a.Register == nil:
		return fmt.Sprintf("%s (unresolved, bank %d)", e, a.Bank)
	case e.Failed():
		return fmt.Sprintf("0x%02x %s %s failed: %s", e.Addr, verb(e.Op), a.Register.Name, e.Err)
	case a.Value != nil:
		return fmt.Sprintf("0x%02x %s %s", e.Addr, verb(e.Op), a.Value)
	default:
		return fmt.Sprintf("0x%02x %s %s", e.Addr, verb(e.Op), a.Register.Name)
	}
}

func verb(op Op) string {
	if op == OpWriteRead {
		return "READ"
	}
	return "WRITE"
}

// Annotator follows the bank selects in a stream of events and names the
// register behind every data transfer. Banks are tracked per device address.
type Annotator struct {
	registers *regs.Map
	bankSel   uint8
	banks     map[uint8]int
}

// NewAnnotator resolves registers in m. bankSel is the in-bank offset of the
// bank select register.
func NewAnnotator(m *regs.Map, bankSel uint8) *Annotator {
	return &Annotator{registers: m, bankSel: bankSel, banks: map[uint8]int{}}
}

func (a *Annotator) bank(addr uint8) int {
	b, ok := a.banks[addr]
	if !ok {
		return -1
	}
	return b
}

// Annotate resolves e and advances the bank state.
func (a *Annotator) Annotate(e Event) Annotation {
	out := Annotation{Event: e, Bank: a.bank(e.Addr)}
	if len(e.Tx) == 0 {
		return out
	}
	if e.Op == OpWrite && len(e.Tx) == 2 && e.Tx[0] == a.bankSel {
		out.BankSelect = true
		out.Bank = int(e.Tx[1])
		if e.Failed() {
			out.Bank = -1
		}
		a.banks[e.Addr] = out.Bank
		return out
	}
	if out.Bank < 0 {
		return out
	}
	r, ok := a.registers.ByAddress(hal.NewRegAddress(uint8(out.Bank), e.Tx[0]))
	if !ok {
		return out
	}
	out.Register = r
	data := e.Tx[1:]
	if e.Op == OpWriteRead {
		data = e.Rx
	}
	if v, err := regs.ValueOf(r, data); err == nil {
		out.Value = &v
	}
	return out
}

// AnnotateAll resolves a whole trace from a fresh bank state.
func AnnotateAll(m *regs.Map, bankSel uint8, events []Event) []Annotation {
	a := NewAnnotator(m, bankSel)
	out := make([]Annotation, 0, len(events))
	for _, e := range events {
		out = append(out, a.Annotate(e))
	}
	return out
}

package regs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mbalug7/go-icm42605/pkg/hal"
)

// Map indexes a register table by name and address.
type Map struct {
	all    []*Register
	byName map[string]*Register
	byAddr map[hal.RegAddress]*Register
}

// NewMap validates every register and builds the index. Names are matched
// case-insensitively and, like addresses, must be unique.
func NewMap(registers ...*Register) (*Map, error) {
	m := &Map{
		byName: make(map[string]*Register, len(registers)),
		byAddr: make(map[hal.RegAddress]*Register, len(registers)),
	}
	for _, r := range registers {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		key := strings.ToUpper(r.Name)
		if _, ok := m.byName[key]; ok {
			return nil, fmt.Errorf("register %s defined twice: %w", r.Name, ErrLayout)
		}
		if other, ok := m.byAddr[r.Address]; ok {
			return nil, fmt.Errorf("registers %s and %s share address %s: %w", other.Name, r.Name, r.Address, ErrLayout)
		}
		m.byName[key] = r
		m.byAddr[r.Address] = r
		m.all = append(m.all, r)
	}
	return m, nil
}

// MustMap is NewMap for package level tables.
func MustMap(registers ...*Register) *Map {
	m, err := NewMap(registers...)
	if err != nil {
		panic(err)
	}
	return m
}

// Lookup finds a register by name.
func (m *Map) Lookup(name string) (*Register, bool) {
	r, ok := m.byName[strings.ToUpper(name)]
	return r, ok
}

// ByAddress finds a register by bank and offset.
func (m *Map) ByAddress(addr hal.RegAddress) (*Register, bool) {
	r, ok := m.byAddr[addr]
	return r, ok
}

// InBank returns the registers of one bank ordered by offset.
func (m *Map) InBank(bank uint8) []*Register {
	var out []*Register
	for _, r := range m.all {
		if r.Address.Bank() == bank {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Address.Offset() < out[j].Address.Offset()
	})
	return out
}

// All returns the registers in declaration order.
func (m *Map) All() []*Register {
	return append([]*Register(nil), m.all...)
}

// Banks returns the banks that hold at least one register, ascending.
func (m *Map) Banks() []uint8 {
	seen := map[uint8]bool{}
	var out []uint8
	for _, r := range m.all {
		b := r.Address.Bank()
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

package regs

import (
	"context"
	"fmt"

	"github.com/mbalug7/go-icm42605/pkg/hal"
)

// Handle binds a register descriptor to a blocking register interface.
type Handle struct {
	reg *Register
	ri  hal.RegisterInterface
}

// NewHandle returns a handle for reg on ri.
func NewHandle(reg *Register, ri hal.RegisterInterface) *Handle {
	return &Handle{reg: reg, ri: ri}
}

// Register returns the descriptor behind the handle.
func (h *Handle) Register() *Register {
	return h.reg
}

// Read fetches the register in one bus read.
func (h *Handle) Read() (Value, error) {
	if err := checkRead(h.reg); err != nil {
		return Value{}, err
	}
	v := NewValue(h.reg)
	if err := h.ri.ReadRegister(h.reg.Address, h.reg.SizeBits, v.Bytes()); err != nil {
		return Value{}, err
	}
	return v, nil
}

// Write stores v in one bus write.
func (h *Handle) Write(v Value) error {
	if err := checkWrite(h.reg, v); err != nil {
		return err
	}
	return h.ri.WriteRegister(h.reg.Address, h.reg.SizeBits, v.Bytes())
}

// Modify reads the register, lets fn change the value and writes it back.
// The two bus operations are not atomic.
func (h *Handle) Modify(fn func(v *Value) error) error {
	if err := checkModify(h.reg); err != nil {
		return err
	}
	v, err := h.Read()
	if err != nil {
		return err
	}
	if err = fn(&v); err != nil {
		return err
	}
	return h.Write(v)
}

// ContextHandle binds a register descriptor to a context-aware register interface.
type ContextHandle struct {
	reg *Register
	ri  hal.ContextRegisterInterface
}

// NewContextHandle returns a handle for reg on ri.
func NewContextHandle(reg *Register, ri hal.ContextRegisterInterface) *ContextHandle {
	return &ContextHandle{reg: reg, ri: ri}
}

// Register returns the descriptor behind the handle.
func (h *ContextHandle) Register() *Register {
	return h.reg
}

// Read fetches the register in one bus read.
func (h *ContextHandle) Read(ctx context.Context) (Value, error) {
	if err := checkRead(h.reg); err != nil {
		return Value{}, err
	}
	v := NewValue(h.reg)
	if err := h.ri.ReadRegister(ctx, h.reg.Address, h.reg.SizeBits, v.Bytes()); err != nil {
		return Value{}, err
	}
	return v, nil
}

// Write stores v in one bus write.
func (h *ContextHandle) Write(ctx context.Context, v Value) error {
	if err := checkWrite(h.reg, v); err != nil {
		return err
	}
	return h.ri.WriteRegister(ctx, h.reg.Address, h.reg.SizeBits, v.Bytes())
}

// Modify reads the register, lets fn change the value and writes it back.
func (h *ContextHandle) Modify(ctx context.Context, fn func(v *Value) error) error {
	if err := checkModify(h.reg); err != nil {
		return err
	}
	v, err := h.Read(ctx)
	if err != nil {
		return err
	}
	if err = fn(&v); err != nil {
		return err
	}
	return h.Write(ctx, v)
}

func checkRead(r *Register) error {
	if !r.Readable() {
		return fmt.Errorf("read of %s register %s: %w", r.Access, r.Name, ErrAccessViolation)
	}
	return nil
}

func checkWrite(r *Register, v Value) error {
	if !r.Writable() {
		return fmt.Errorf("write of %s register %s: %w", r.Access, r.Name, ErrAccessViolation)
	}
	if v.reg == nil {
		return fmt.Errorf("write of %s: %w", r.Name, ErrNoRegister)
	}
	if !sameLayout(v.reg, r) {
		return fmt.Errorf("write of %s value to %s: %w", v.reg.Name, r.Name, ErrForeignValue)
	}
	return nil
}

// sameLayout reports whether a and b are the same register or aliases of one
// layout.
func sameLayout(a, b *Register) bool {
	if a == b {
		return true
	}
	if a.SizeBits != b.SizeBits || a.Order != b.Order || len(a.Fields) == 0 || len(a.Fields) != len(b.Fields) {
		return false
	}
	for i, f := range a.Fields {
		if b.Fields[i] != f {
			return false
		}
	}
	return true
}

func checkModify(r *Register) error {
	if !r.Readable() || !r.Writable() {
		return fmt.Errorf("read-modify-write of %s register %s: %w", r.Access, r.Name, ErrAccessViolation)
	}
	return nil
}

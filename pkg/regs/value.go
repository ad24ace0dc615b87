package regs

import (
	"fmt"
	"strings"
)

// Value holds the raw bytes of one register together with its descriptor.
// The zero bytes of NewValue are the starting point of whole-register writes.
// The zero Value has no descriptor: it has no bytes and its field accessors
// return ErrNoRegister.
type Value struct {
	reg  *Register
	data [4]byte
}

// NewValue returns an all-zero value for r.
func NewValue(r *Register) Value {
	return Value{reg: r}
}

// ValueOf wraps register bytes as they came off the bus.
func ValueOf(r *Register, b []byte) (Value, error) {
	if len(b) != r.Size() {
		return Value{}, fmt.Errorf("%s: %d bytes for a %d bit register: %w", r.Name, len(b), r.SizeBits, ErrLayout)
	}
	v := Value{reg: r}
	copy(v.data[:], b)
	return v, nil
}

// ResetValue returns the documented power-on value of r.
func ResetValue(r *Register) Value {
	v := Value{reg: r}
	Store(v.Bytes(), r.Order, r.Reset)
	return v
}

// Register returns the descriptor the value belongs to.
func (v *Value) Register() *Register {
	return v.reg
}

// Bytes returns the register bytes in bus order. The slice aliases the value.
func (v *Value) Bytes() []byte {
	if v.reg == nil {
		return nil
	}
	return v.data[:v.reg.Size()]
}

// Uint32 returns the reassembled register value.
func (v Value) Uint32() uint32 {
	if v.reg == nil {
		return 0
	}
	return Load(v.Bytes(), v.reg.Order)
}

// Raw returns the undecoded bits of f.
func (v Value) Raw(f *Field) (uint32, error) {
	if v.reg == nil {
		return 0, ErrNoRegister
	}
	if !v.reg.Has(f) {
		return 0, v.foreign(f)
	}
	return Raw(v.Bytes(), v.reg.Order, f)
}

// Get decodes f.
func (v Value) Get(f *Field) (FieldValue, error) {
	if v.reg == nil {
		return FieldValue{}, ErrNoRegister
	}
	if !v.reg.Has(f) {
		return FieldValue{}, v.foreign(f)
	}
	return Decode(v.Bytes(), v.reg.Order, f)
}

// Set encodes fv into f, leaving the other fields untouched.
func (v *Value) Set(f *Field, fv FieldValue) error {
	if v.reg == nil {
		return ErrNoRegister
	}
	if !v.reg.Has(f) {
		return v.foreign(f)
	}
	return Encode(v.Bytes(), v.reg.Order, f, fv)
}

// GetByName decodes the field called name.
func (v Value) GetByName(name string) (FieldValue, error) {
	if v.reg == nil {
		return FieldValue{}, ErrNoRegister
	}
	f, ok := v.reg.Field(name)
	if !ok {
		return FieldValue{}, fmt.Errorf("%s has no field %q: %w", v.reg.Name, name, ErrForeignField)
	}
	return v.Get(f)
}

// NamedValue pairs a field with its decoded value or decode error.
type NamedValue struct {
	Field *Field
	Value FieldValue
	Err   error
}

// Fields decodes every field in declaration order. A field that fails to
// decode carries its error and does not stop the others.
func (v Value) Fields() []NamedValue {
	if v.reg == nil {
		return nil
	}
	out := make([]NamedValue, 0, len(v.reg.Fields))
	for _, f := range v.reg.Fields {
		fv, err := Decode(v.Bytes(), v.reg.Order, f)
		out = append(out, NamedValue{Field: f, Value: fv, Err: err})
	}
	return out
}

func (v Value) String() string {
	if v.reg == nil {
		return "{}"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s{", v.reg.Name)
	for i, nv := range v.Fields() {
		if i > 0 {
			sb.WriteString(" ")
		}
		if nv.Err != nil {
			fmt.Fprintf(&sb, "%s:!%v", nv.Field.Name, nv.Err)
			continue
		}
		fmt.Fprintf(&sb, "%s:%s", nv.Field.Name, nv.Value)
	}
	sb.WriteString("}")
	return sb.String()
}

func (v Value) foreign(f *Field) error {
	return fmt.Errorf("%s.%s: %w", v.reg.Name, f.Name, ErrForeignField)
}

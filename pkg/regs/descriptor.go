// Package regs describes bit-precise register layouts and moves field values
// in and out of the raw register bytes.
package regs

import (
	"fmt"

	"github.com/mbalug7/go-icm42605/pkg/hal"
)

// Access is the access mode of a register.
type Access uint8

const (
	ReadWrite Access = iota
	ReadOnly
	WriteOnly
)

func (a Access) String() string {
	switch a {
	case ReadWrite:
		return "RW"
	case ReadOnly:
		return "RO"
	case WriteOnly:
		return "WO"
	default:
		return "UNKNOWN"
	}
}

// ByteOrder is the order in which a multi-byte register travels on the bus.
type ByteOrder uint8

const (
	BigEndian ByteOrder = iota
	LittleEndian
)

func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "LE"
	}
	return "BE"
}

// Kind is the logical type of a field.
type Kind uint8

const (
	KindBool Kind = iota
	KindUint
	KindInt
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// CatchAllValue is what a typed enumeration decodes to when the raw bits only
// match the catch-all variant.
const CatchAllValue = 0xff

// Variant is one named value of an enumeration.
type Variant struct {
	Name     string
	Pattern  uint32
	CatchAll bool
}

// Enum is a closed set of variants. Variants are matched in declaration order.
type Enum struct {
	Name     string
	Variants []Variant
}

// V declares a variant bound to pattern.
func V(name string, pattern uint32) Variant {
	return Variant{Name: name, Pattern: pattern}
}

// Other declares the catch-all variant.
func Other(name string) Variant {
	return Variant{Name: name, CatchAll: true}
}

// NewEnum builds an enumeration from explicit variants.
func NewEnum(name string, variants ...Variant) *Enum {
	return &Enum{Name: name, Variants: variants}
}

// Sequential builds an enumeration whose variants take the patterns 0, 1, 2, ...
func Sequential(name string, names ...string) *Enum {
	e := &Enum{Name: name, Variants: make([]Variant, len(names))}
	for i, n := range names {
		e.Variants[i] = V(n, uint32(i))
	}
	return e
}

// Match returns the variant for raw. The catch-all variant is only returned
// when no explicit variant matches.
func (e *Enum) Match(raw uint32) (Variant, error) {
	var catchAll *Variant
	for i := range e.Variants {
		v := &e.Variants[i]
		if v.CatchAll {
			if catchAll == nil {
				catchAll = v
			}
			continue
		}
		if v.Pattern == raw {
			return *v, nil
		}
	}
	if catchAll != nil {
		return *catchAll, nil
	}
	return Variant{}, fmt.Errorf("%s: pattern 0x%x: %w", e.Name, raw, ErrUnknownPattern)
}

// Lookup returns the variant called name.
func (e *Enum) Lookup(name string) (Variant, bool) {
	for _, v := range e.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// Pattern returns the variant bound to pattern, ignoring the catch-all.
func (e *Enum) Pattern(pattern uint32) (Variant, bool) {
	for _, v := range e.Variants {
		if !v.CatchAll && v.Pattern == pattern {
			return v, true
		}
	}
	return Variant{}, false
}

// HasCatchAll reports whether the enumeration declares a catch-all variant.
func (e *Enum) HasCatchAll() bool {
	for _, v := range e.Variants {
		if v.CatchAll {
			return true
		}
	}
	return false
}

// NameOf returns the variant name for a typed enumeration value.
func (e *Enum) NameOf(value uint8) string {
	if value == CatchAllValue {
		for _, v := range e.Variants {
			if v.CatchAll {
				return v.Name
			}
		}
	}
	if v, ok := e.Pattern(uint32(value)); ok {
		return v.Name
	}
	return fmt.Sprintf("%s(%d)", e.Name, value)
}

// Field is a bit range inside a register. Offset counts from the least
// significant bit of the reassembled register value.
type Field struct {
	Name   string
	Offset int
	Width  int
	Kind   Kind
	Enum   *Enum
}

// Bool declares a one-bit boolean field.
func Bool(name string, bit int) *Field {
	return &Field{Name: name, Offset: bit, Width: 1, Kind: KindBool}
}

// Uint declares an unsigned field covering bits [lo, hi).
func Uint(name string, lo, hi int) *Field {
	return &Field{Name: name, Offset: lo, Width: hi - lo, Kind: KindUint}
}

// Int declares a two's-complement field covering bits [lo, hi).
func Int(name string, lo, hi int) *Field {
	return &Field{Name: name, Offset: lo, Width: hi - lo, Kind: KindInt}
}

// EnumOf declares an enumeration field covering bits [lo, hi).
func EnumOf(name string, e *Enum, lo, hi int) *Field {
	return &Field{Name: name, Offset: lo, Width: hi - lo, Kind: KindEnum, Enum: e}
}

func (f *Field) mask() uint32 {
	return widthMask(f.Width)
}

// Register is the static description of one register.
type Register struct {
	Name     string
	Address  hal.RegAddress
	SizeBits int
	Access   Access
	Order    ByteOrder
	Reset    uint32
	Fields   []*Field
}

// Size returns the register width in bytes.
func (r *Register) Size() int {
	return r.SizeBits / 8
}

// Readable reports whether the register may be read.
func (r *Register) Readable() bool {
	return r.Access != WriteOnly
}

// Writable reports whether the register may be written.
func (r *Register) Writable() bool {
	return r.Access != ReadOnly
}

// Field returns the field called name.
func (r *Register) Field(name string) (*Field, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Has reports whether f is one of the register's fields.
func (r *Register) Has(f *Field) bool {
	for _, rf := range r.Fields {
		if rf == f {
			return true
		}
	}
	return false
}

// Ref returns an alias of r at another address. The alias shares the field
// layout but is otherwise an independent descriptor.
func (r *Register) Ref(name string, addr hal.RegAddress) *Register {
	alias := *r
	alias.Name = name
	alias.Address = addr
	alias.Fields = append([]*Field(nil), r.Fields...)
	return &alias
}

// Validate checks the register layout.
func (r *Register) Validate() error {
	if r.SizeBits <= 0 || r.SizeBits%8 != 0 || r.SizeBits > 32 {
		return fmt.Errorf("%s: size %d bits: %w", r.Name, r.SizeBits, ErrLayout)
	}
	var used uint32
	names := make(map[string]bool, len(r.Fields))
	for _, f := range r.Fields {
		if names[f.Name] {
			return fmt.Errorf("%s.%s: duplicate field: %w", r.Name, f.Name, ErrLayout)
		}
		names[f.Name] = true
		if f.Width < 1 || f.Offset < 0 || f.Offset+f.Width > r.SizeBits {
			return fmt.Errorf("%s.%s: bits %d..%d outside register: %w", r.Name, f.Name, f.Offset, f.Offset+f.Width, ErrLayout)
		}
		bits := f.mask() << uint(f.Offset)
		if used&bits != 0 {
			return fmt.Errorf("%s.%s: overlaps another field: %w", r.Name, f.Name, ErrLayout)
		}
		used |= bits
		if err := validateKind(f); err != nil {
			return fmt.Errorf("%s.%s: %w", r.Name, f.Name, err)
		}
	}
	return nil
}

func validateKind(f *Field) error {
	switch f.Kind {
	case KindBool:
		if f.Width != 1 {
			return fmt.Errorf("bool field of width %d: %w", f.Width, ErrLayout)
		}
	case KindEnum:
		if f.Enum == nil {
			return fmt.Errorf("enum field without variants: %w", ErrLayout)
		}
		catchAlls := 0
		for _, v := range f.Enum.Variants {
			if v.CatchAll {
				catchAlls++
				continue
			}
			if v.Pattern > f.mask() {
				return fmt.Errorf("variant %s pattern 0x%x does not fit %d bits: %w", v.Name, v.Pattern, f.Width, ErrLayout)
			}
		}
		if catchAlls > 1 {
			return fmt.Errorf("%s declares %d catch-all variants: %w", f.Enum.Name, catchAlls, ErrLayout)
		}
		if _, ok := f.Enum.Pattern(CatchAllValue); ok && catchAlls == 1 {
			return fmt.Errorf("%s binds the catch-all value 0x%x: %w", f.Enum.Name, CatchAllValue, ErrLayout)
		}
	}
	return nil
}

// MustDefine validates r and panics on an invalid layout. It is meant for
// package level register tables.
func MustDefine(r *Register) *Register {
	if err := r.Validate(); err != nil {
		panic(err)
	}
	return r
}

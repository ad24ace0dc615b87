package regs

import (
	"fmt"
	"strconv"
)

// FieldValue is the decoded value of one field. Kind selects the member that
// carries the value.
type FieldValue struct {
	Kind    Kind
	Bool    bool
	Uint    uint32
	Int     int32
	Variant Variant
}

func BoolValue(b bool) FieldValue    { return FieldValue{Kind: KindBool, Bool: b} }
func UintValue(u uint32) FieldValue  { return FieldValue{Kind: KindUint, Uint: u} }
func IntValue(i int32) FieldValue    { return FieldValue{Kind: KindInt, Int: i} }
func EnumValue(v Variant) FieldValue { return FieldValue{Kind: KindEnum, Variant: v} }

func (v FieldValue) String() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindUint:
		return strconv.FormatUint(uint64(v.Uint), 10)
	case KindInt:
		return strconv.FormatInt(int64(v.Int), 10)
	case KindEnum:
		return v.Variant.Name
	default:
		return "?"
	}
}

// Load reassembles up to four register bytes into one logical value.
func Load(buf []byte, order ByteOrder) uint32 {
	var v uint32
	if order == LittleEndian {
		for i := len(buf) - 1; i >= 0; i-- {
			v = v<<8 | uint32(buf[i])
		}
		return v
	}
	for _, b := range buf {
		v = v<<8 | uint32(b)
	}
	return v
}

// Store lays v out over buf in the given byte order.
func Store(buf []byte, order ByteOrder, v uint32) {
	n := len(buf)
	for i := 0; i < n; i++ {
		b := byte(v >> (8 * uint(i)))
		if order == LittleEndian {
			buf[i] = b
		} else {
			buf[n-1-i] = b
		}
	}
}

// Extract returns the width bits of logical starting at offset.
func Extract(logical uint32, offset, width int) uint32 {
	return (logical >> uint(offset)) & widthMask(width)
}

// Insert replaces the width bits of logical starting at offset with raw.
func Insert(logical uint32, offset, width int, raw uint32) uint32 {
	m := widthMask(width) << uint(offset)
	return logical&^m | (raw<<uint(offset))&m
}

// SignExtend interprets raw as a two's-complement number of width bits.
func SignExtend(raw uint32, width int) int32 {
	shift := uint(32 - width)
	return int32(raw<<shift) >> shift
}

func widthMask(width int) uint32 {
	if width >= 32 {
		return 0xffffffff
	}
	return uint32(1)<<uint(width) - 1
}

func checkSpan(buf []byte, f *Field) error {
	if f.Width < 1 || f.Offset < 0 || f.Offset+f.Width > len(buf)*8 || len(buf) > 4 {
		return fmt.Errorf("%s: bits %d..%d in %d bytes: %w", f.Name, f.Offset, f.Offset+f.Width, len(buf), ErrLayout)
	}
	return nil
}

// Raw returns the undecoded bits of f.
func Raw(buf []byte, order ByteOrder, f *Field) (uint32, error) {
	if err := checkSpan(buf, f); err != nil {
		return 0, err
	}
	return Extract(Load(buf, order), f.Offset, f.Width), nil
}

// Decode reads the value of f out of the register bytes in buf.
func Decode(buf []byte, order ByteOrder, f *Field) (FieldValue, error) {
	raw, err := Raw(buf, order, f)
	if err != nil {
		return FieldValue{}, err
	}
	switch f.Kind {
	case KindBool:
		return BoolValue(raw != 0), nil
	case KindUint:
		return UintValue(raw), nil
	case KindInt:
		return IntValue(SignExtend(raw, f.Width)), nil
	case KindEnum:
		v, err := f.Enum.Match(raw)
		if err != nil {
			return FieldValue{}, fmt.Errorf("%s: %w", f.Name, err)
		}
		return EnumValue(v), nil
	}
	return FieldValue{}, fmt.Errorf("%s: kind %d: %w", f.Name, f.Kind, ErrKind)
}

// Encode merges v into the bits of f inside buf. Bits outside f are left as
// they are.
func Encode(buf []byte, order ByteOrder, f *Field, v FieldValue) error {
	if err := checkSpan(buf, f); err != nil {
		return err
	}
	raw, err := rawOf(f, v)
	if err != nil {
		return err
	}
	Store(buf, order, Insert(Load(buf, order), f.Offset, f.Width, raw))
	return nil
}

func rawOf(f *Field, v FieldValue) (uint32, error) {
	if v.Kind != f.Kind {
		return 0, fmt.Errorf("%s: %s value for %s field: %w", f.Name, v.Kind, f.Kind, ErrKind)
	}
	switch f.Kind {
	case KindBool:
		if v.Bool {
			return 1, nil
		}
		return 0, nil
	case KindUint:
		if v.Uint > widthMask(f.Width) {
			return 0, fmt.Errorf("%s: %d does not fit %d bits: %w", f.Name, v.Uint, f.Width, ErrValueRange)
		}
		return v.Uint, nil
	case KindInt:
		lo := -(int64(1) << uint(f.Width-1))
		hi := int64(1)<<uint(f.Width-1) - 1
		if int64(v.Int) < lo || int64(v.Int) > hi {
			return 0, fmt.Errorf("%s: %d outside [%d, %d]: %w", f.Name, v.Int, lo, hi, ErrValueRange)
		}
		return uint32(v.Int) & widthMask(f.Width), nil
	case KindEnum:
		if v.Variant.CatchAll {
			return 0, fmt.Errorf("%s: %s: %w", f.Name, v.Variant.Name, ErrCatchAll)
		}
		known, ok := f.Enum.Lookup(v.Variant.Name)
		if !ok || known.CatchAll || known.Pattern != v.Variant.Pattern {
			return 0, fmt.Errorf("%s: %s is not a variant of %s: %w", f.Name, v.Variant.Name, f.Enum.Name, ErrValueRange)
		}
		return known.Pattern, nil
	}
	return 0, fmt.Errorf("%s: kind %d: %w", f.Name, f.Kind, ErrKind)
}

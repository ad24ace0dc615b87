package regs

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFieldValue reads a field value from text. Numbers may use Go prefixes
// such as 0x, enumeration variants are matched by name ignoring case or by
// bit pattern.
func ParseFieldValue(f *Field, s string) (FieldValue, error) {
	s = strings.TrimSpace(s)
	switch f.Kind {
	case KindBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return FieldValue{}, fmt.Errorf("%s: %q is not a bool: %w", f.Name, s, ErrValueRange)
		}
		return BoolValue(b), nil
	case KindUint:
		u, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return FieldValue{}, fmt.Errorf("%s: %q is not an unsigned number: %w", f.Name, s, ErrValueRange)
		}
		return UintValue(uint32(u)), nil
	case KindInt:
		i, err := strconv.ParseInt(s, 0, 32)
		if err != nil {
			return FieldValue{}, fmt.Errorf("%s: %q is not a number: %w", f.Name, s, ErrValueRange)
		}
		return IntValue(int32(i)), nil
	case KindEnum:
		for _, v := range f.Enum.Variants {
			if strings.EqualFold(v.Name, s) {
				return EnumValue(v), nil
			}
		}
		if p, err := strconv.ParseUint(s, 0, 32); err == nil {
			if v, ok := f.Enum.Pattern(uint32(p)); ok {
				return EnumValue(v), nil
			}
		}
		return FieldValue{}, fmt.Errorf("%s: %q is not a variant of %s: %w", f.Name, s, f.Enum.Name, ErrValueRange)
	}
	return FieldValue{}, fmt.Errorf("%s: kind %d: %w", f.Name, f.Kind, ErrKind)
}

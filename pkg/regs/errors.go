package regs

import "errors"

var (
	// ErrAccessViolation is returned for a write to a read-only register or a
	// read of a write-only register. No bus operation takes place.
	ErrAccessViolation = errors.New("register access violation")
	// ErrUnknownPattern is returned when enumeration bits match no variant and
	// the enumeration has no catch-all.
	ErrUnknownPattern = errors.New("bit pattern matches no variant")
	// ErrCatchAll is returned when encoding the catch-all variant, which has no
	// single bit pattern.
	ErrCatchAll = errors.New("catch-all variant cannot be encoded")
	// ErrValueRange is returned when a value does not fit its field.
	ErrValueRange = errors.New("value out of field range")
	// ErrKind is returned when a value of the wrong logical type is given to a field.
	ErrKind = errors.New("field kind mismatch")
	// ErrForeignField is returned when a field is used with a register that does not carry it.
	ErrForeignField = errors.New("field does not belong to register")
	// ErrForeignValue is returned when a value built for one register is
	// written through the handle of a register with another layout.
	ErrForeignValue = errors.New("value belongs to another register")
	// ErrNoRegister is returned by the zero Value, which has no descriptor.
	ErrNoRegister = errors.New("value has no register")
	// ErrLayout is returned by descriptor validation.
	ErrLayout = errors.New("invalid register layout")
)

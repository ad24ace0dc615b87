package regs

import (
	"context"
	"fmt"
)

// BoolField, UintField, IntField and EnumField are typed views of a field
// descriptor. They are built once next to the register table and carry the
// same *Field pointer, so they work with aliases created by Register.Ref.

// BoolField is a typed one-bit field.
type BoolField struct{ *Field }

// UintField is a typed unsigned field.
type UintField struct{ *Field }

// IntField is a typed two's-complement field.
type IntField struct{ *Field }

// EnumField is a typed enumeration field. T values are the variant bit
// patterns, except for the catch-all which is CatchAllValue.
type EnumField[T ~uint8] struct{ *Field }

func lookup(r *Register, name string, kind Kind) *Field {
	f, ok := r.Field(name)
	if !ok {
		panic(fmt.Sprintf("register %s has no field %q", r.Name, name))
	}
	if f.Kind != kind {
		panic(fmt.Sprintf("field %s.%s is %s, not %s", r.Name, name, f.Kind, kind))
	}
	return f
}

// NewBoolField returns the boolean field name of r. It panics when r has no
// such field.
func NewBoolField(r *Register, name string) BoolField {
	return BoolField{lookup(r, name, KindBool)}
}

// NewUintField returns the unsigned field name of r.
func NewUintField(r *Register, name string) UintField {
	return UintField{lookup(r, name, KindUint)}
}

// NewIntField returns the signed field name of r.
func NewIntField(r *Register, name string) IntField {
	return IntField{lookup(r, name, KindInt)}
}

// NewEnumField returns the enumeration field name of r.
func NewEnumField[T ~uint8](r *Register, name string) EnumField[T] {
	return EnumField[T]{lookup(r, name, KindEnum)}
}

func (f BoolField) Get(v Value) (bool, error) {
	fv, err := v.Get(f.Field)
	return fv.Bool, err
}

func (f BoolField) Set(v *Value, b bool) error {
	return v.Set(f.Field, BoolValue(b))
}

func (f UintField) Get(v Value) (uint32, error) {
	fv, err := v.Get(f.Field)
	return fv.Uint, err
}

func (f UintField) Set(v *Value, u uint32) error {
	return v.Set(f.Field, UintValue(u))
}

func (f IntField) Get(v Value) (int32, error) {
	fv, err := v.Get(f.Field)
	return fv.Int, err
}

func (f IntField) Set(v *Value, i int32) error {
	return v.Set(f.Field, IntValue(i))
}

func (f EnumField[T]) Get(v Value) (T, error) {
	fv, err := v.Get(f.Field)
	if err != nil {
		return 0, err
	}
	if fv.Variant.CatchAll {
		return T(CatchAllValue), nil
	}
	return T(fv.Variant.Pattern), nil
}

func (f EnumField[T]) Set(v *Value, t T) error {
	if uint8(t) == CatchAllValue && f.Enum.HasCatchAll() {
		return fmt.Errorf("%s: %w", f.Name, ErrCatchAll)
	}
	variant, ok := f.Enum.Pattern(uint32(t))
	if !ok {
		return fmt.Errorf("%s: %d is not a variant of %s: %w", f.Name, uint8(t), f.Enum.Name, ErrValueRange)
	}
	return v.Set(f.Field, EnumValue(variant))
}

// Read fetches the register behind h and decodes the field.
func (f BoolField) Read(h *Handle) (bool, error) {
	return readVia(h, f.Get)
}

// Update changes only this field with a read-modify-write of the register.
func (f BoolField) Update(h *Handle, b bool) error {
	return updateVia(h, f.Set, b)
}

func (f BoolField) ReadContext(ctx context.Context, h *ContextHandle) (bool, error) {
	return readContextVia(ctx, h, f.Get)
}

func (f BoolField) UpdateContext(ctx context.Context, h *ContextHandle, b bool) error {
	return updateContextVia(ctx, h, f.Set, b)
}

func (f UintField) Read(h *Handle) (uint32, error) {
	return readVia(h, f.Get)
}

func (f UintField) Update(h *Handle, u uint32) error {
	return updateVia(h, f.Set, u)
}

func (f IntField) Read(h *Handle) (int32, error) {
	return readVia(h, f.Get)
}

func (f IntField) Update(h *Handle, i int32) error {
	return updateVia(h, f.Set, i)
}

func (f EnumField[T]) Read(h *Handle) (T, error) {
	return readVia(h, f.Get)
}

func (f EnumField[T]) Update(h *Handle, t T) error {
	return updateVia(h, f.Set, t)
}

func (f UintField) ReadContext(ctx context.Context, h *ContextHandle) (uint32, error) {
	return readContextVia(ctx, h, f.Get)
}

func (f UintField) UpdateContext(ctx context.Context, h *ContextHandle, u uint32) error {
	return updateContextVia(ctx, h, f.Set, u)
}

func (f IntField) ReadContext(ctx context.Context, h *ContextHandle) (int32, error) {
	return readContextVia(ctx, h, f.Get)
}

func (f IntField) UpdateContext(ctx context.Context, h *ContextHandle, i int32) error {
	return updateContextVia(ctx, h, f.Set, i)
}

func (f EnumField[T]) ReadContext(ctx context.Context, h *ContextHandle) (T, error) {
	return readContextVia(ctx, h, f.Get)
}

func (f EnumField[T]) UpdateContext(ctx context.Context, h *ContextHandle, t T) error {
	return updateContextVia(ctx, h, f.Set, t)
}

func readVia[T any](h *Handle, get func(Value) (T, error)) (T, error) {
	v, err := h.Read()
	if err != nil {
		var zero T
		return zero, err
	}
	return get(v)
}

func updateVia[T any](h *Handle, set func(*Value, T) error, t T) error {
	return h.Modify(func(v *Value) error { return set(v, t) })
}

func readContextVia[T any](ctx context.Context, h *ContextHandle, get func(Value) (T, error)) (T, error) {
	v, err := h.Read(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return get(v)
}

func updateContextVia[T any](ctx context.Context, h *ContextHandle, set func(*Value, T) error, t T) error {
	return h.Modify(ctx, func(v *Value) error { return set(v, t) })
}

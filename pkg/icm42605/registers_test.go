package icm42605

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/mbalug7/go-icm42605/pkg/regs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boundaryValues returns the values every field of kind f.Kind must carry
// unchanged through an encode and decode.
func boundaryValues(f *regs.Field) []regs.FieldValue {
	switch f.Kind {
	case regs.KindBool:
		return []regs.FieldValue{regs.BoolValue(false), regs.BoolValue(true)}
	case regs.KindUint:
		hi := uint32(1<<uint(f.Width) - 1)
		return []regs.FieldValue{regs.UintValue(0), regs.UintValue(1), regs.UintValue(hi)}
	case regs.KindInt:
		lo := int32(-(int64(1) << uint(f.Width-1)))
		hi := int32(int64(1)<<uint(f.Width-1) - 1)
		return []regs.FieldValue{regs.IntValue(lo), regs.IntValue(-1), regs.IntValue(0), regs.IntValue(hi)}
	case regs.KindEnum:
		var out []regs.FieldValue
		for _, v := range f.Enum.Variants {
			if !v.CatchAll {
				out = append(out, regs.EnumValue(v))
			}
		}
		return out
	}
	return nil
}

func rawFields(t *testing.T, v regs.Value) map[string]uint32 {
	out := make(map[string]uint32, len(v.Register().Fields))
	for _, f := range v.Register().Fields {
		raw, err := v.Raw(f)
		require.NoError(t, err)
		out[f.Name] = raw
	}
	return out
}

func TestRegisterFieldsRoundTrip(t *testing.T) {
	for _, r := range Registers.All() {
		r := r
		t.Run(r.Name, func(t *testing.T) {
			for _, fill := range []byte{0x00, 0xff, 0xa5} {
				for _, f := range r.Fields {
					for _, fv := range boundaryValues(f) {
						v, err := regs.ValueOf(r, bytes.Repeat([]byte{fill}, r.Size()))
						require.NoError(t, err)
						before := rawFields(t, v)

						require.NoError(t, v.Set(f, fv), "%s=%s", f.Name, fv)
						got, err := v.Get(f)
						require.NoError(t, err)
						assert.Equal(t, fv, got, "%s fill 0x%02x", f.Name, fill)

						after := rawFields(t, v)
						for name, raw := range before {
							if name != f.Name {
								assert.Equal(t, raw, after[name], "%s changed by %s=%s", name, f.Name, fv)
							}
						}
					}
				}
			}
		})
	}
}

func TestRegisterEnumUndefinedPatterns(t *testing.T) {
	for _, r := range Registers.All() {
		for _, f := range r.Fields {
			if f.Kind != regs.KindEnum {
				continue
			}
			r, f := r, f
			t.Run(fmt.Sprintf("%s.%s", r.Name, f.Name), func(t *testing.T) {
				for raw := uint32(0); raw < 1<<uint(f.Width); raw++ {
					if _, ok := f.Enum.Pattern(raw); ok {
						continue
					}
					buf := make([]byte, r.Size())
					regs.Store(buf, r.Order, regs.Insert(0, f.Offset, f.Width, raw))
					got, err := regs.Decode(buf, r.Order, f)
					if f.Enum.HasCatchAll() {
						require.NoError(t, err, "pattern 0x%x", raw)
						assert.True(t, got.Variant.CatchAll, "pattern 0x%x", raw)
					} else {
						assert.ErrorIs(t, err, regs.ErrUnknownPattern, "pattern 0x%x", raw)
					}
				}
			})
		}
	}
}

func TestRegisterCatchAllNotEncodable(t *testing.T) {
	for _, r := range Registers.All() {
		for _, f := range r.Fields {
			if f.Kind != regs.KindEnum || !f.Enum.HasCatchAll() {
				continue
			}
			for _, variant := range f.Enum.Variants {
				if variant.CatchAll {
					v := regs.NewValue(r)
					assert.ErrorIs(t, v.Set(f, regs.EnumValue(variant)), regs.ErrCatchAll, "%s.%s", r.Name, f.Name)
				}
			}
		}
	}
}

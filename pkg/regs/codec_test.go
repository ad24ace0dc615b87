package regs

import (
	"testing"

	"github.com/mbalug7/go-icm42605/pkg/hal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testModeEnum = NewEnum("mode", V("OFF", 0), V("ON", 1), V("TURBO", 3), Other("RESERVED"))
	testAxisEnum = Sequential("axis", "X", "Y", "Z")
)

func testControl() *Register {
	return MustDefine(&Register{
		Name:     "CONTROL",
		Address:  hal.NewRegAddress(0, 0x10),
		SizeBits: 8,
		Reset:    0x21,
		Fields: []*Field{
			Bool("enable", 0),
			EnumOf("mode", testModeEnum, 1, 3),
			Uint("level", 3, 6),
			EnumOf("axis", testAxisEnum, 6, 8),
		},
	})
}

func testSample() *Register {
	return MustDefine(&Register{
		Name:     "SAMPLE",
		Address:  hal.NewRegAddress(0, 0x20),
		SizeBits: 16,
		Access:   ReadOnly,
		Fields:   []*Field{Int("value", 0, 16)},
	})
}

func TestLoadStore(t *testing.T) {
	tests := []struct {
		name  string
		order ByteOrder
		buf   []byte
		want  uint32
	}{
		{"single byte", BigEndian, []byte{0xa5}, 0xa5},
		{"big endian", BigEndian, []byte{0x12, 0x34}, 0x1234},
		{"little endian", LittleEndian, []byte{0x34, 0x12}, 0x1234},
		{"24 bit little endian", LittleEndian, []byte{0x01, 0x02, 0x03}, 0x030201},
		{"24 bit big endian", BigEndian, []byte{0x01, 0x02, 0x03}, 0x010203},
		{"32 bit", BigEndian, []byte{0xde, 0xad, 0xbe, 0xef}, 0xdeadbeef},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Load(tt.buf, tt.order))

			out := make([]byte, len(tt.buf))
			Store(out, tt.order, tt.want)
			assert.Equal(t, tt.buf, out)
		})
	}
}

func TestDecode(t *testing.T) {
	sample := testSample()
	control := testControl()
	enable, _ := control.Field("enable")
	mode, _ := control.Field("mode")
	level, _ := control.Field("level")
	axis, _ := control.Field("axis")

	tests := []struct {
		name  string
		buf   []byte
		order ByteOrder
		field *Field
		want  FieldValue
	}{
		{"signed minimum", []byte{0x80, 0x00}, BigEndian, sample.Fields[0], IntValue(-32768)},
		{"signed maximum", []byte{0x7f, 0xff}, BigEndian, sample.Fields[0], IntValue(32767)},
		{"signed minus one", []byte{0xff, 0xff}, BigEndian, sample.Fields[0], IntValue(-1)},
		{"signed little endian", []byte{0x00, 0x80}, LittleEndian, sample.Fields[0], IntValue(-32768)},
		{"bool set", []byte{0x01}, BigEndian, enable, BoolValue(true)},
		{"bool clear", []byte{0xfe}, BigEndian, enable, BoolValue(false)},
		{"uint", []byte{0x28}, BigEndian, level, UintValue(5)},
		{"enum", []byte{0x06}, BigEndian, mode, EnumValue(V("TURBO", 3))},
		{"enum catch-all", []byte{0x04}, BigEndian, mode, EnumValue(Other("RESERVED"))},
		{"sequential enum", []byte{0x80}, BigEndian, axis, EnumValue(V("Z", 2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.buf, tt.order, tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeUnknownPattern(t *testing.T) {
	control := testControl()
	axis, _ := control.Field("axis")

	_, err := Decode([]byte{0xc0}, BigEndian, axis)
	assert.ErrorIs(t, err, ErrUnknownPattern)
}

func TestEncodeKeepsOtherBits(t *testing.T) {
	control := testControl()
	level, _ := control.Field("level")

	buf := []byte{0xff}
	require.NoError(t, Encode(buf, BigEndian, level, UintValue(0)))
	assert.Equal(t, []byte{0xc7}, buf)

	require.NoError(t, Encode(buf, BigEndian, level, UintValue(2)))
	assert.Equal(t, []byte{0xd7}, buf)
}

func TestEncodeRoundTrip(t *testing.T) {
	sample := testSample()
	f := sample.Fields[0]
	for _, want := range []int32{-32768, -1, 0, 1, 32767} {
		buf := make([]byte, 2)
		require.NoError(t, Encode(buf, BigEndian, f, IntValue(want)))
		got, err := Decode(buf, BigEndian, f)
		require.NoError(t, err)
		assert.Equal(t, want, got.Int)
	}
}

func TestEncodeErrors(t *testing.T) {
	control := testControl()
	enable, _ := control.Field("enable")
	mode, _ := control.Field("mode")
	level, _ := control.Field("level")
	narrow := Int("narrow", 0, 4)

	tests := []struct {
		name    string
		field   *Field
		value   FieldValue
		wantErr error
	}{
		{"uint too large", level, UintValue(8), ErrValueRange},
		{"int below range", narrow, IntValue(-9), ErrValueRange},
		{"int above range", narrow, IntValue(8), ErrValueRange},
		{"catch-all", mode, EnumValue(Other("RESERVED")), ErrCatchAll},
		{"foreign variant", mode, EnumValue(V("Z", 2)), ErrValueRange},
		{"variant with wrong pattern", mode, EnumValue(V("ON", 2)), ErrValueRange},
		{"kind mismatch", enable, UintValue(1), ErrKind},
		{"field outside buffer", Uint("wide", 4, 12), UintValue(1), ErrLayout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := []byte{0x5a}
			err := Encode(buf, BigEndian, tt.field, tt.value)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []byte{0x5a}, buf)
		})
	}
}

func TestEncodeSignedBoundaries(t *testing.T) {
	narrow := Int("narrow", 0, 4)

	buf := []byte{0xf0}
	require.NoError(t, Encode(buf, BigEndian, narrow, IntValue(-8)))
	assert.Equal(t, []byte{0xf8}, buf)

	got, err := Decode(buf, BigEndian, narrow)
	require.NoError(t, err)
	assert.Equal(t, int32(-8), got.Int)

	require.NoError(t, Encode(buf, BigEndian, narrow, IntValue(7)))
	assert.Equal(t, []byte{0xf7}, buf)
}

func TestSignExtend(t *testing.T) {
	assert.Equal(t, int32(-1), SignExtend(0x1, 1))
	assert.Equal(t, int32(-2048), SignExtend(0x800, 12))
	assert.Equal(t, int32(2047), SignExtend(0x7ff, 12))
	assert.Equal(t, int32(-1), SignExtend(0xffffffff, 32))
}

func TestFieldValueString(t *testing.T) {
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "12", UintValue(12).String())
	assert.Equal(t, "-3", IntValue(-3).String())
	assert.Equal(t, "ON", EnumValue(V("ON", 1)).String())
}

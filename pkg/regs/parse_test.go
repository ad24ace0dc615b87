package regs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldValue(t *testing.T) {
	control := testControl()
	enable, _ := control.Field("enable")
	mode, _ := control.Field("mode")
	level, _ := control.Field("level")
	value := testSample().Fields[0]

	tests := []struct {
		name  string
		field *Field
		input string
		want  FieldValue
	}{
		{"bool", enable, "true", BoolValue(true)},
		{"bool digit", enable, "0", BoolValue(false)},
		{"uint", level, "5", UintValue(5)},
		{"uint hex", level, "0x7", UintValue(7)},
		{"int", value, "-200", IntValue(-200)},
		{"int spaces", value, " 12 ", IntValue(12)},
		{"enum name", mode, "TURBO", EnumValue(V("TURBO", 3))},
		{"enum name any case", mode, "on", EnumValue(V("ON", 1))},
		{"enum pattern", mode, "3", EnumValue(V("TURBO", 3))},
		{"catch-all name", mode, "reserved", EnumValue(Other("RESERVED"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFieldValue(tt.field, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFieldValueErrors(t *testing.T) {
	control := testControl()
	enable, _ := control.Field("enable")
	mode, _ := control.Field("mode")
	level, _ := control.Field("level")

	for _, tt := range []struct {
		field *Field
		input string
	}{
		{enable, "yes"},
		{level, "-1"},
		{level, "five"},
		{mode, "2"},
		{mode, "FAST"},
	} {
		_, err := ParseFieldValue(tt.field, tt.input)
		assert.ErrorIs(t, err, ErrValueRange, "%s=%s", tt.field.Name, tt.input)
	}
}

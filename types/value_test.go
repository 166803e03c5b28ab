package types_test

import (
	"testing"

	"github.com/chaisql/binjson/types"
	"github.com/stretchr/testify/require"
)

func TestValueConstructors(t *testing.T) {
	tests := []struct {
		name string
		v    types.Value
		tp   types.Type
		raw  any
	}{
		{"null", types.NewNullValue(), types.TypeNull, nil},
		{"boolean", types.NewBooleanValue(true), types.TypeBoolean, true},
		{"double", types.NewDoubleValue(3.14), types.TypeDouble, 3.14},
		{"text", types.NewTextValue("hello"), types.TypeText, "hello"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.tp, test.v.Type())
			require.Equal(t, test.raw, test.v.V())
			require.Equal(t, test.name, test.v.Type().String())
		})
	}
}

func TestValueString(t *testing.T) {
	vb := types.NewValueBuffer(
		types.NewDoubleValue(1),
		types.NewDoubleValue(1.5),
		types.NewDoubleValue(1e20),
		types.NewTextValue(`say "hi"`),
		types.NewBooleanValue(false),
		types.NewNullValue(),
	)
	require.Equal(t, `[1.0, 1.5, 1e+20, "say \"hi\"", false, null]`, types.NewArrayValue(vb).String())

	fb := types.NewFieldBuffer().
		Add("a", types.NewDoubleValue(1.5)).
		Add("a", types.NewArrayValue(types.NewValueBuffer()))
	require.Equal(t, `{"a": 1.5, "a": []}`, types.NewObjectValue(fb).String())
}

func TestAsHelpers(t *testing.T) {
	require.True(t, types.AsBool(types.NewBooleanValue(true)))
	require.Equal(t, 1.5, types.AsFloat64(types.NewDoubleValue(1.5)))
	require.Equal(t, "a", types.AsString(types.NewTextValue("a")))

	vb := types.NewValueBuffer(types.NewNullValue())
	require.Equal(t, 1, types.AsArray(types.NewArrayValue(vb)).Len())

	fb := types.NewFieldBuffer().Add("a", types.NewNullValue())
	require.Equal(t, 1, types.AsObject(types.NewObjectValue(fb)).Len())
}

func TestIsNull(t *testing.T) {
	require.True(t, types.IsNull(nil))
	require.True(t, types.IsNull(types.NewNullValue()))
	require.False(t, types.IsNull(types.NewBooleanValue(false)))
}

package types_test

import (
	"math"
	"testing"

	"github.com/chaisql/binjson/types"
	"github.com/stretchr/testify/require"
)

func array(vs ...types.Value) types.Value {
	return types.NewArrayValue(types.NewValueBuffer(vs...))
}

func object(fields ...types.Field) types.Value {
	fb := types.NewFieldBuffer()
	for _, f := range fields {
		fb.Add(f.Name, f.Value)
	}
	return types.NewObjectValue(fb)
}

func TestIsEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b types.Value
		want bool
	}{
		{"nulls", types.NewNullValue(), types.NewNullValue(), true},
		{"booleans", types.NewBooleanValue(true), types.NewBooleanValue(true), true},
		{"booleans differ", types.NewBooleanValue(true), types.NewBooleanValue(false), false},
		{"doubles", types.NewDoubleValue(1.5), types.NewDoubleValue(1.5), true},
		{"doubles differ", types.NewDoubleValue(1.5), types.NewDoubleValue(1.6), false},
		{"nan never equal", types.NewDoubleValue(math.NaN()), types.NewDoubleValue(math.NaN()), false},
		{"texts", types.NewTextValue("a"), types.NewTextValue("a"), true},
		{"different types", types.NewDoubleValue(0), types.NewNullValue(), false},
		{"boolean vs text", types.NewBooleanValue(true), types.NewTextValue("true"), false},

		{"empty arrays", array(), array(), true},
		{"arrays", array(types.NewDoubleValue(1)), array(types.NewDoubleValue(1)), true},
		{"array order significant",
			array(types.NewDoubleValue(1), types.NewDoubleValue(2)),
			array(types.NewDoubleValue(2), types.NewDoubleValue(1)),
			false},
		{"array lengths differ", array(types.NewNullValue()), array(), false},

		{"empty objects", object(), object(), true},
		{"objects",
			object(types.Field{Name: "a", Value: types.NewDoubleValue(1)}),
			object(types.Field{Name: "a", Value: types.NewDoubleValue(1)}),
			true},
		{"object field order significant",
			object(
				types.Field{Name: "a", Value: types.NewDoubleValue(1)},
				types.Field{Name: "b", Value: types.NewDoubleValue(2)},
			),
			object(
				types.Field{Name: "b", Value: types.NewDoubleValue(2)},
				types.Field{Name: "a", Value: types.NewDoubleValue(1)},
			),
			false},
		{"duplicate fields equal",
			object(
				types.Field{Name: "a", Value: types.NewDoubleValue(1)},
				types.Field{Name: "a", Value: types.NewDoubleValue(2)},
			),
			object(
				types.Field{Name: "a", Value: types.NewDoubleValue(1)},
				types.Field{Name: "a", Value: types.NewDoubleValue(2)},
			),
			true},
		{"nested trees",
			object(types.Field{Name: "a", Value: array(object(), types.NewNullValue())}),
			object(types.Field{Name: "a", Value: array(object(), types.NewNullValue())}),
			true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, types.IsEqual(test.a, test.b))
			require.Equal(t, test.want, types.IsEqual(test.b, test.a))
		})
	}
}

func TestIsEqualNil(t *testing.T) {
	require.True(t, types.IsEqual(nil, nil))
	require.False(t, types.IsEqual(nil, types.NewNullValue()))
	require.False(t, types.IsEqual(types.NewNullValue(), nil))
}

package types

import "strings"

var _ Value = NewArrayValue(nil)

type ArrayValue struct {
	a Array
}

// NewArrayValue returns an array value wrapping a.
func NewArrayValue(x Array) *ArrayValue {
	return &ArrayValue{
		a: x,
	}
}

func (v *ArrayValue) V() any {
	return v.a
}

func (v *ArrayValue) Type() Type {
	return TypeArray
}

func (v *ArrayValue) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	_ = v.a.Iterate(func(i int, value Value) error {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(value.String())
		return nil
	})
	sb.WriteByte(']')

	return sb.String()
}

package types

import (
	"strconv"
	"strings"
)

var _ Value = NewObjectValue(nil)

type ObjectValue struct {
	o Object
}

// NewObjectValue returns an object value wrapping o.
func NewObjectValue(x Object) *ObjectValue {
	return &ObjectValue{
		o: x,
	}
}

func (v *ObjectValue) V() any {
	return v.o
}

func (v *ObjectValue) Type() Type {
	return TypeObject
}

func (v *ObjectValue) String() string {
	var sb strings.Builder

	sb.WriteByte('{')
	first := true
	_ = v.o.Iterate(func(field string, value Value) error {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.Quote(field))
		sb.WriteString(": ")
		sb.WriteString(value.String())
		return nil
	})
	sb.WriteByte('}')

	return sb.String()
}

package types

import "strconv"

var _ Value = NewBooleanValue(false)

type BooleanValue bool

// NewBooleanValue returns a boolean value. On the wire, true and false are
// two distinct tags; in memory they share this one type.
func NewBooleanValue(x bool) BooleanValue {
	return BooleanValue(x)
}

func (v BooleanValue) V() any {
	return bool(v)
}

func (v BooleanValue) Type() Type {
	return TypeBoolean
}

func (v BooleanValue) String() string {
	return strconv.FormatBool(bool(v))
}

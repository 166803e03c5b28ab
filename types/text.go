package types

import "strconv"

var _ Value = NewTextValue("")

type TextValue string

// NewTextValue returns a text value. Go strings are not guaranteed to hold
// valid UTF-8; the decoder is the component that enforces it on the wire.
func NewTextValue(x string) TextValue {
	return TextValue(x)
}

func (v TextValue) V() any {
	return string(v)
}

func (v TextValue) Type() Type {
	return TypeText
}

func (v TextValue) String() string {
	return strconv.Quote(string(v))
}

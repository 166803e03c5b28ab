package types

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"
)

var _ Array = (*ValueBuffer)(nil)

// ValueBuffer is an array implementation that holds its values in memory.
// It is the form produced by the decoder.
type ValueBuffer struct {
	Values []Value
}

// NewValueBuffer creates a buffer containing the given values.
func NewValueBuffer(values ...Value) *ValueBuffer {
	return &ValueBuffer{Values: values}
}

// Iterate over all the values of the buffer in order.
func (vb *ValueBuffer) Iterate(fn func(i int, value Value) error) error {
	for i, v := range vb.Values {
		err := fn(i, v)
		if err != nil {
			return err
		}
	}

	return nil
}

// GetByIndex returns a value by index. If the index is out of range it
// returns ErrValueNotFound.
func (vb *ValueBuffer) GetByIndex(i int) (Value, error) {
	if i < 0 || i >= len(vb.Values) {
		return nil, errors.WithStack(ErrValueNotFound)
	}

	return vb.Values[i], nil
}

// Len returns the number of values in the buffer.
func (vb *ValueBuffer) Len() int {
	return len(vb.Values)
}

// Append a value to the buffer and return the buffer.
func (vb *ValueBuffer) Append(v Value) *ValueBuffer {
	vb.Values = append(vb.Values, v)
	return vb
}

// Reset empties the buffer, keeping the allocated space.
func (vb *ValueBuffer) Reset() {
	vb.Values = vb.Values[:0]
}

// Clone returns a shallow copy of the buffer: the slice is copied, the
// values themselves are shared.
func (vb *ValueBuffer) Clone() *ValueBuffer {
	return &ValueBuffer{Values: slices.Clone(vb.Values)}
}

// A Field is a single entry of an object: a name and a value.
type Field struct {
	Name  string
	Value Value
}

var _ Object = (*FieldBuffer)(nil)

// FieldBuffer is an object implementation that holds its fields in memory,
// in insertion order. Duplicate field names are kept verbatim.
// It is the form produced by the decoder.
type FieldBuffer struct {
	fields []Field
}

// NewFieldBuffer creates an empty buffer.
func NewFieldBuffer() *FieldBuffer {
	return new(FieldBuffer)
}

// Add a field to the buffer and return the buffer. Adding a name that is
// already present appends a second pair, it doesn't replace the first one.
func (fb *FieldBuffer) Add(field string, v Value) *FieldBuffer {
	fb.fields = append(fb.fields, Field{Name: field, Value: v})
	return fb
}

// Iterate over all the fields of the buffer in insertion order.
func (fb *FieldBuffer) Iterate(fn func(field string, value Value) error) error {
	for _, f := range fb.fields {
		err := fn(f.Name, f.Value)
		if err != nil {
			return err
		}
	}

	return nil
}

// GetByField returns the value of the first field with the given name.
// If no field has that name it returns ErrFieldNotFound.
func (fb *FieldBuffer) GetByField(field string) (Value, error) {
	for _, f := range fb.fields {
		if f.Name == field {
			return f.Value, nil
		}
	}

	return nil, errors.WithStack(ErrFieldNotFound)
}

// Len returns the number of fields in the buffer.
func (fb *FieldBuffer) Len() int {
	return len(fb.fields)
}

// Fields returns the underlying pair sequence.
func (fb *FieldBuffer) Fields() []Field {
	return fb.fields
}

// Reset empties the buffer, keeping the allocated space.
func (fb *FieldBuffer) Reset() {
	fb.fields = fb.fields[:0]
}

// Clone returns a shallow copy of the buffer: the slice is copied, the
// values themselves are shared.
func (fb *FieldBuffer) Clone() *FieldBuffer {
	return &FieldBuffer{fields: slices.Clone(fb.fields)}
}

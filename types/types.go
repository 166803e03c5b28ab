package types

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrFieldNotFound must be returned by Object implementations when
	// calling GetByField and the field doesn't exist.
	ErrFieldNotFound = errors.New("field not found")
	// ErrValueNotFound must be returned by Array implementations when
	// calling GetByIndex and the index is out of range.
	ErrValueNotFound = errors.New("value not found")
)

// Type represents a type supported by the codec.
type Type uint8

// List of supported types.
const (
	// TypeAny denotes the absence of type.
	TypeAny Type = iota
	TypeNull
	TypeBoolean
	TypeDouble
	TypeText
	TypeArray
	TypeObject
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeDouble:
		return "double"
	case TypeText:
		return "text"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	}

	panic(fmt.Sprintf("unsupported type %#v", t))
}

// A Value stores a piece of data of any supported type alongside its type.
// Values form finite, acyclic trees: arrays and objects contain other
// values, all the other types are leaves.
type Value interface {
	Type() Type
	V() any
	String() string
}

// An Array is an ordered collection of values. Order is significant and
// preserved by the codec.
type Array interface {
	// Iterate goes through all the values of the array and calls the given
	// function by passing each one of them.
	// If the given function returns an error, the iteration stops.
	Iterate(fn func(i int, value Value) error) error
	// GetByIndex returns a value by index of the array.
	// Must return ErrValueNotFound if the index is out of range.
	GetByIndex(i int) (Value, error)
	// Len returns the number of values in the array.
	Len() int
}

// An Object is an ordered collection of field/value pairs. Field names may
// repeat: objects are pair sequences, not maps, and both order and
// duplicates are preserved by the codec.
type Object interface {
	// Iterate goes through all the fields of the object in insertion order
	// and calls the given function by passing each one of them.
	// If the given function returns an error, the iteration stops.
	Iterate(fn func(field string, value Value) error) error
	// GetByField returns the value of the first field with the given name.
	// Must return ErrFieldNotFound if no field has that name.
	GetByField(field string) (Value, error)
	// Len returns the number of fields in the object.
	Len() int
}

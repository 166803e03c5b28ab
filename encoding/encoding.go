// Package encoding implements the binary format used to serialize value
// trees. Every value starts with a single tag byte followed by its payload:
//
//	value  := tag, payload
//	tag    := 0x00 null | 0x01 true | 0x02 false | 0x03 number
//	        | 0x04 string | 0x05 array | 0x06 object
//	number := 8 bytes, big-endian IEEE-754 double
//	string := uvarint(byte length), raw UTF-8 bytes
//	array  := uvarint(count), count values
//	object := uvarint(count), count (uvarint(key length), key bytes, value)
//
// There is no framing around a value: no magic number, no version, no
// checksum.
package encoding

import "github.com/cockroachdb/errors"

// Tags used to encode values on the wire. Each value is prefixed with
// exactly one of these bytes. The tag space is closed: decoding any other
// byte as a tag fails with ErrInvalidTag.
const (
	NullValue   byte = 0x00
	TrueValue   byte = 0x01
	FalseValue  byte = 0x02
	NumberValue byte = 0x03
	TextValue   byte = 0x04
	ArrayValue  byte = 0x05
	ObjectValue byte = 0x06
)

var (
	// ErrInvalidTag is returned by the decoder when a tag byte is outside
	// the defined set.
	ErrInvalidTag = errors.New("invalid type tag")
	// ErrInvalidUTF8 is returned by the decoder when a string or object key
	// payload is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 in text payload")
	// ErrVarintOverflow is returned by the decoder when a length varint
	// doesn't fit in 64 bits.
	ErrVarintOverflow = errors.New("varint overflows a 64-bit integer")
	// ErrTooDeep is returned by the decoder when a value is nested deeper
	// than Decoder.MaxDepth.
	ErrTooDeep = errors.New("maximum nesting depth exceeded")
)

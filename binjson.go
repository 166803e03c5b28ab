// Package binjson serializes JSON-like value trees to a compact binary
// form and back. A value is one of null, boolean, double, string, array or
// object; see the types package for the model and the encoding package for
// the wire format.
package binjson

import (
	"bytes"
	"io"

	"github.com/chaisql/binjson/encoding"
	"github.com/chaisql/binjson/types"
	"github.com/cockroachdb/errors"
)

// Marshal returns the binary encoding of v.
func Marshal(v types.Value) ([]byte, error) {
	var buf bytes.Buffer

	_, err := encoding.NewEncoder(&buf).Encode(v)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes one value from data. The whole slice must be consumed:
// trailing bytes after the value are an error. To read a value from the
// front of a stream, use NewDecoder instead.
func Unmarshal(data []byte) (types.Value, error) {
	r := bytes.NewReader(data)

	dec := encoding.NewDecoder(r)
	v, err := dec.Decode()
	if err != nil {
		return nil, err
	}

	if trailing := r.Len() + dec.Buffered(); trailing > 0 {
		return nil, errors.Errorf("%d trailing bytes after value", trailing)
	}

	return v, nil
}

// NewEncoder creates an encoder that writes values to w.
func NewEncoder(w io.Writer) *encoding.Encoder {
	return encoding.NewEncoder(w)
}

// NewDecoder creates a decoder that reads values from r.
func NewDecoder(r io.Reader) *encoding.Decoder {
	return encoding.NewDecoder(r)
}

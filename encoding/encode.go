package encoding

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/chaisql/binjson/types"
	"github.com/cockroachdb/errors"
)

// An Encoder writes the binary representation of values to an output
// stream. It borrows the value trees it is given read-only and keeps no
// reference to them once Encode returns.
type Encoder struct {
	w io.Writer

	buf []byte
}

// NewEncoder creates an Encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encode writes v to the underlying writer and returns the number of bytes
// written. Encoding is deterministic: the same tree always produces the
// same bytes. The only failure modes are the writer's own errors, which are
// returned unchanged in the error chain.
func (e *Encoder) Encode(v types.Value) (int, error) {
	return e.encodeValue(v)
}

func (e *Encoder) encodeValue(v types.Value) (int, error) {
	switch v.Type() {
	case types.TypeNull:
		return e.flush(append(e.buf[:0], NullValue))
	case types.TypeBoolean:
		if types.AsBool(v) {
			return e.flush(append(e.buf[:0], TrueValue))
		}
		return e.flush(append(e.buf[:0], FalseValue))
	case types.TypeDouble:
		e.buf = append(e.buf[:0], NumberValue)
		e.buf = binary.BigEndian.AppendUint64(e.buf, math.Float64bits(types.AsFloat64(v)))
		return e.flush(e.buf)
	case types.TypeText:
		return e.encodeText(types.AsString(v))
	case types.TypeArray:
		return e.encodeArray(types.AsArray(v))
	case types.TypeObject:
		return e.encodeObject(types.AsObject(v))
	}

	return 0, errors.Errorf("unsupported value type: %s", v.Type())
}

func (e *Encoder) encodeText(s string) (int, error) {
	e.buf = append(e.buf[:0], TextValue)
	e.buf = AppendUvarint(e.buf, uint64(len(s)))
	n, err := e.flush(e.buf)
	if err != nil {
		return n, err
	}

	m, err := io.WriteString(e.w, s)
	return n + m, err
}

func (e *Encoder) encodeArray(a types.Array) (int, error) {
	e.buf = append(e.buf[:0], ArrayValue)
	e.buf = AppendUvarint(e.buf, uint64(a.Len()))
	n, err := e.flush(e.buf)
	if err != nil {
		return n, err
	}

	err = a.Iterate(func(_ int, v types.Value) error {
		m, err := e.encodeValue(v)
		n += m
		return err
	})

	return n, err
}

func (e *Encoder) encodeObject(o types.Object) (int, error) {
	e.buf = append(e.buf[:0], ObjectValue)
	e.buf = AppendUvarint(e.buf, uint64(o.Len()))
	n, err := e.flush(e.buf)
	if err != nil {
		return n, err
	}

	err = o.Iterate(func(field string, v types.Value) error {
		e.buf = AppendUvarint(e.buf[:0], uint64(len(field)))
		m, err := e.flush(e.buf)
		n += m
		if err != nil {
			return err
		}

		m, err = io.WriteString(e.w, field)
		n += m
		if err != nil {
			return err
		}

		m, err = e.encodeValue(v)
		n += m
		return err
	})

	return n, err
}

// flush writes the scratch buffer to the underlying writer.
func (e *Encoder) flush(buf []byte) (int, error) {
	return e.w.Write(buf)
}

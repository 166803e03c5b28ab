package encoding

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"

	"github.com/chaisql/binjson/types"
	"github.com/cockroachdb/errors"
)

// DefaultMaxDepth is the nesting depth a Decoder accepts unless configured
// otherwise.
const DefaultMaxDepth = 1000

// maxPrealloc bounds the memory reserved up front from a declared length,
// so that a corrupt or hostile stream cannot make a single allocation
// arbitrarily large before any payload byte has been read.
const maxPrealloc = 1 << 16

// A Decoder reads values from an input stream. Decoding is all-or-nothing:
// on failure no partial value is returned, and the error reports which of
// the malformed-input conditions was hit. The decoded tree is freshly
// allocated and exclusively owned by the caller.
type Decoder struct {
	r *bufio.Reader

	// MaxDepth bounds the nesting of decoded arrays and objects. Deeper
	// input fails with ErrTooDeep instead of exhausting the stack.
	MaxDepth int
}

// NewDecoder creates a Decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &Decoder{
		r:        br,
		MaxDepth: DefaultMaxDepth,
	}
}

// Decode reads one value from the underlying reader. Bytes following the
// value are left unread.
func (d *Decoder) Decode() (types.Value, error) {
	return d.decodeValue(0)
}

// Buffered returns the number of bytes that have been read from the
// underlying reader but not consumed by Decode.
func (d *Decoder) Buffered() int {
	return d.r.Buffered()
}

func (d *Decoder) decodeValue(depth int) (types.Value, error) {
	if depth > d.MaxDepth {
		return nil, errors.WithStack(ErrTooDeep)
	}

	tag, err := d.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, errors.Wrap(err, "cannot read type tag")
	}

	switch tag {
	case NullValue:
		return types.NewNullValue(), nil
	case TrueValue:
		return types.NewBooleanValue(true), nil
	case FalseValue:
		return types.NewBooleanValue(false), nil
	case NumberValue:
		var buf [8]byte
		if err := d.readFull(buf[:]); err != nil {
			return nil, errors.Wrap(err, "cannot read number")
		}
		return types.NewDoubleValue(math.Float64frombits(binary.BigEndian.Uint64(buf[:]))), nil
	case TextValue:
		s, err := d.readText("string")
		if err != nil {
			return nil, err
		}
		return types.NewTextValue(s), nil
	case ArrayValue:
		return d.decodeArray(depth)
	case ObjectValue:
		return d.decodeObject(depth)
	}

	return nil, errors.Wrapf(ErrInvalidTag, "0x%02x", tag)
}

func (d *Decoder) decodeArray(depth int) (types.Value, error) {
	n, err := ReadUvarint(d.r)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read array length")
	}

	vb := &types.ValueBuffer{Values: make([]types.Value, 0, prealloc(n))}
	for i := uint64(0); i < n; i++ {
		v, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		vb.Append(v)
	}

	return types.NewArrayValue(vb), nil
}

func (d *Decoder) decodeObject(depth int) (types.Value, error) {
	n, err := ReadUvarint(d.r)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read object length")
	}

	fb := types.NewFieldBuffer()
	for i := uint64(0); i < n; i++ {
		field, err := d.readText("object key")
		if err != nil {
			return nil, err
		}

		v, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}

		// duplicate keys are legal on the wire and preserved verbatim
		fb.Add(field, v)
	}

	return types.NewObjectValue(fb), nil
}

// readText reads a varint length followed by that many bytes and validates
// that they form UTF-8 text.
func (d *Decoder) readText(what string) (string, error) {
	l, err := ReadUvarint(d.r)
	if err != nil {
		return "", errors.Wrapf(err, "cannot read %s length", what)
	}

	b, err := d.readN(l)
	if err != nil {
		return "", errors.Wrapf(err, "cannot read %s payload", what)
	}

	if !utf8.Valid(b) {
		return "", errors.Wrapf(ErrInvalidUTF8, "in %s payload", what)
	}

	return string(b), nil
}

// readN reads exactly n bytes. The declared length is not trusted for
// allocation: the buffer grows in bounded chunks as bytes actually arrive.
func (d *Decoder) readN(n uint64) ([]byte, error) {
	if n <= maxPrealloc {
		buf := make([]byte, int(n))
		if err := d.readFull(buf); err != nil {
			return nil, err
		}
		return buf, nil
	}

	buf := make([]byte, 0, maxPrealloc)
	chunk := make([]byte, maxPrealloc)
	for remaining := n; remaining > 0; {
		c := uint64(len(chunk))
		if remaining < c {
			c = remaining
		}
		if err := d.readFull(chunk[:c]); err != nil {
			return nil, err
		}
		buf = append(buf, chunk[:c]...)
		remaining -= c
	}

	return buf, nil
}

// readFull fills p, turning an EOF before the last byte into
// io.ErrUnexpectedEOF so that every truncation surfaces the same way.
func (d *Decoder) readFull(p []byte) error {
	_, err := io.ReadFull(d.r, p)
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}

	return errors.WithStack(err)
}

func prealloc(n uint64) int {
	if n > maxPrealloc {
		return maxPrealloc
	}

	return int(n)
}

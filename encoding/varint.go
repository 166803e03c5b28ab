package encoding

import (
	"io"

	"github.com/cockroachdb/errors"
)

// MaxVarintLen is the maximum number of bytes a 64-bit unsigned integer may
// occupy on the wire. Longer continuation sequences are malformed.
const MaxVarintLen = 10

// AppendUvarint appends the varint representation of x to dst: 7 bits of
// magnitude per byte, least significant group first, bit 7 set on every
// byte except the last. Zero encodes as a single 0x00 byte.
func AppendUvarint(dst []byte, x uint64) []byte {
	for x >= 0x80 {
		dst = append(dst, byte(x)|0x80)
		x >>= 7
	}

	return append(dst, byte(x))
}

// ReadUvarint reads a varint from r. It fails with io.ErrUnexpectedEOF if r
// is exhausted mid-sequence and with ErrVarintOverflow if the sequence is
// longer than MaxVarintLen bytes or carries bits beyond bit 63.
func ReadUvarint(r io.ByteReader) (uint64, error) {
	var x uint64
	var s uint

	for i := 0; ; i++ {
		c, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return 0, errors.WithStack(err)
		}

		if c < 0x80 {
			if i == MaxVarintLen-1 && c > 1 {
				return 0, errors.WithStack(ErrVarintOverflow)
			}
			return x | uint64(c)<<s, nil
		}

		if i == MaxVarintLen-1 {
			return 0, errors.WithStack(ErrVarintOverflow)
		}

		x |= uint64(c&0x7f) << s
		s += 7
	}
}

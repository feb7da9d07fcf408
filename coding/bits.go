// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits accumulates a bit stream most significant bit first.
// The zero value is an empty stream ready to use.
type Bits struct {
	b     []byte
	shift int // bits used in the last byte; 0 if it is full
}

// NewBits returns Bits with enough capacity for the data codewords of
// a QR code of the given version and level.
func NewBits(v Version, l Level) *Bits {
	return &Bits{b: make([]byte, 0, v.DataBytes(l))}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.shift = 0
}

// Len returns the number of bytes in b, including a partial last byte.
func (b *Bits) Len() int { return len(b.b) }

// Shift returns the number of bits used in the last byte, or 0 if the
// stream ends on a byte boundary.
func (b *Bits) Shift() int { return b.shift }

// Bits returns the number of bits written to b.
func (b *Bits) Bits() int {
	n := len(b.b) * 8
	if b.shift != 0 {
		n -= 8 - b.shift
	}
	return n
}

// Bytes returns the contents of b.  Unused bits of the last byte are
// zero.  The slice is valid until the next modification of b.
func (b *Bits) Bytes() []byte { return b.b }

// Parts returns the contents of b and the number of bits used in the
// last byte, and leaves b empty.  The caller owns the returned slice.
func (b *Bits) Parts() ([]byte, int) {
	p, shift := b.b, b.shift
	b.b, b.shift = nil, 0
	return p, shift
}

// Write appends the low nbit bits of v, 1 <= nbit <= 16.
// Write panics if v does not fit in nbit bits.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit < 1 || nbit > 16 || v>>nbit != 0 {
		panic("qr: invalid bit field")
	}
	sum := b.shift + nbit
	switch {
	case b.shift == 0 && sum <= 8:
		b.b = append(b.b, byte(v<<(8-sum)))
	case b.shift == 0:
		b.b = append(b.b, byte(v>>(sum-8)), byte(v<<(16-sum)))
	case sum <= 8:
		// fits in the last byte
		b.b[len(b.b)-1] |= byte(v << (8 - sum))
	case sum <= 16:
		// crosses one byte boundary
		b.b[len(b.b)-1] |= byte(v >> (sum - 8))
		b.b = append(b.b, byte(v<<(16-sum)))
	default:
		// crosses two byte boundaries
		b.b[len(b.b)-1] |= byte(v >> (sum - 8))
		b.b = append(b.b, byte(v>>(sum-16)), byte(v<<(24-sum)))
	}
	b.shift = sum & 7
}

// AppendByte appends c at the next byte boundary.  Unused bits of the
// last byte stay zero.
func (b *Bits) AppendByte(c byte) {
	b.b = append(b.b, c)
	b.shift = 0
}

// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"fmt"
)

// ErrCapacity is matched by CapacityError using errors.Is.
var ErrCapacity = errors.New("qr: capacity exceeded")

// CapacityError reports data too long for the codeword capacity.
type CapacityError struct {
	Bits     int // encoded length in bits
	Capacity int // capacity in bits
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d bits into %d-bit code",
		e.Bits, e.Capacity)
}

func (e CapacityError) Is(target error) bool { return target == ErrCapacity }

// PadTo adds the terminator and pad codewords to b until it holds n
// bytes.  If fewer than 4 bits are free in the last byte, a zero byte
// is added to hold the terminator; otherwise the free bits hold it.
// The terminator is truncated if the data fills the capacity.  PadTo
// returns CapacityError if b is already longer than n bytes.
func (b *Bits) PadTo(n int) error {
	if len(b.b) > n {
		return CapacityError{b.Bits(), n * 8}
	}
	if -b.shift&7 < 4 && len(b.b) < n {
		b.AppendByte(0)
	}
	for pad := byte(0xec); len(b.b) < n; pad ^= 0xec ^ 0x11 {
		b.AppendByte(pad)
	}
	return nil
}

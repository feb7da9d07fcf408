// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// A Segment describes a QR code segment.
type Segment struct {
	Text string // data to encode
	Mode Mode   // encoding mode
}

// SegmentError represents an invalid Segment.
type SegmentError Segment

func (e SegmentError) Error() string {
	if m := getMode(e.Mode); m != nil {
		return fmt.Sprintf("qr: non-%s string %#q", m.name, e.Text)
	}
	return fmt.Sprintf("qr: invalid mode %d", e.Mode)
}

// isValid reports whether s is encodable in m.
func (m *modeEncoder) isValid(s string) bool {
	for i := 0; i < len(s); i++ {
		if !m.accepts(s[i]) {
			return false
		}
	}
	return true
}

// IsValid reports whether seg is encodable.
func (seg Segment) IsValid() bool {
	m := getMode(seg.Mode)
	return m != nil && m.isValid(seg.Text)
}

// EncodedLength returns the encoded length in bits of seg, including
// the header, in the given QR version size class.  EncodedLength
// returns 0 if and only if mode is invalid.  The segment is not
// validated.
func (seg Segment) EncodedLength(class int) int {
	return seg.Mode.Length(len(seg.Text), class)
}

// Encode writes seg encoded for the given QR version size class to b.
// The character count is truncated to the width of its field; a count
// that does not fit implies a segment too long for any version of the
// class.
func (seg Segment) Encode(b *Bits, class int) error {
	m := getMode(seg.Mode)
	if m == nil || !m.isValid(seg.Text) {
		return SegmentError(seg)
	}
	// write header
	s := seg.Text
	clen := int(m.countLength[class])
	b.Write(uint32(m.indicator), 4)
	b.Write(uint32(len(s))&(1<<clen-1), clen)
	// encode the string
	enc3, enc2, enc1 := m.encode3, m.encode2, m.encode1
	if enc3 == nil && enc2 == nil && enc1 == nil {
		for i := 0; i < len(s); i++ {
			b.Write(uint32(s[i]), 8)
		}
		return nil
	}
	if enc3 != nil {
		for len(s) >= 3 {
			b.Write(enc3([3]byte{s[0], s[1], s[2]}))
			s = s[3:]
		}
	}
	if enc2 != nil {
		for len(s) >= 2 {
			b.Write(enc2([2]byte{s[0], s[1]}))
			s = s[2:]
		}
	}
	if enc1 != nil {
		for len(s) >= 1 {
			b.Write(enc1(s[0]))
			s = s[1:]
		}
	}
	if s != "" {
		panic("qr: " + m.name + " mode internal error")
	}
	return nil
}

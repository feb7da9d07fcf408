// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// Encoding modes, from most to least compact.  Each mode accepts a
// superset of the characters accepted by the previous one.
const (
	Numeric      Mode = iota // numeric mode, ASCII digits
	Alphanumeric             // alphanumeric mode, see Alphabet
	Byte                     // byte mode, any data
)

// A Mode is a QR segment encoding mode.
type Mode int

// A modeEncoder implements a QR segment encoding.
//
// Encode3, Encode2 and Encode1 return the encoding of the bytes and
// its length in bits.  The encoder calls a non-nil Encode{N}
// repeatedly as long as N source bytes are available, in descending
// order of N.  If all are nil, each byte is encoded as 8 bits.
type modeEncoder struct {
	name      string // name for error reporting
	indicator byte   // 4 bit mode indicator

	// countLength lists lengths of the character count field in the
	// three QR version size classes.
	countLength [3]byte

	// encodedLength returns the encoded data length in bits of a
	// valid string of n bytes.
	encodedLength func(n int) int

	// accepts reports whether the mode accepts the byte.
	accepts func(c byte) bool

	encode3 func([3]byte) (uint32, int)
	encode2 func([2]byte) (uint32, int)
	encode1 func(byte) (uint32, int)
}

// Alphabet lists the characters of the alphanumeric mode in order of
// their values.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

const (
	alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]
	digitmask uint64 = 0x00000000_03ff0000 // [0-9]
)

// Alphanumeric encoding table.  Bytes outside Alphabet map to 0.
var alpha = [256]byte{
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4,
	'5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'A': 10, 'B': 11, 'C': 12, 'D': 13, 'E': 14, 'F': 15, 'G': 16,
	'H': 17, 'I': 18, 'J': 19, 'K': 20, 'L': 21, 'M': 22, 'N': 23,
	'O': 24, 'P': 25, 'Q': 26, 'R': 27, 'S': 28, 'T': 29, 'U': 30,
	'V': 31, 'W': 32, 'X': 33, 'Y': 34, 'Z': 35,
	' ': 36, '$': 37, '%': 38, '*': 39, '+': 40,
	'-': 41, '.': 42, '/': 43, ':': 44,
}

// AlphaValue returns the alphanumeric mode value of c, or 0 if c is
// not in Alphabet.
func AlphaValue(c byte) byte { return alpha[c] }

func isDigit(c byte) bool { return digitmask>>(uint32(c)-' ')&1 != 0 }
func isAlpha(c byte) bool { return alphamask>>(uint32(c)-' ')&1 != 0 }

var modes = [...]modeEncoder{
	Numeric: {
		name:          "numeric",
		indicator:     1,
		countLength:   [3]byte{10, 12, 14},
		encodedLength: func(n int) int { return (10*n + 2) / 3 },
		accepts:       isDigit,
		encode1: func(b byte) (uint32, int) {
			return uint32(b - '0'), 4
		},
		encode2: func(b [2]byte) (uint32, int) {
			return uint32(b[0]-'0')*10 + uint32(b[1]-'0'), 7
		},
		encode3: func(b [3]byte) (uint32, int) {
			return uint32(b[0]-'0')*100 + uint32(b[1]-'0')*10 +
				uint32(b[2]-'0'), 10
		},
	},
	Alphanumeric: {
		name:          "alphanumeric",
		indicator:     2,
		countLength:   [3]byte{9, 11, 13},
		encodedLength: func(n int) int { return (11*n + 1) / 2 },
		accepts:       isAlpha,
		encode1: func(b byte) (uint32, int) {
			return uint32(alpha[b]), 6
		},
		encode2: func(b [2]byte) (uint32, int) {
			return uint32(alpha[b[0]])*45 + uint32(alpha[b[1]]), 11
		},
	},
	Byte: {
		name:          "byte",
		indicator:     4,
		countLength:   [3]byte{8, 16, 16},
		encodedLength: func(n int) int { return n * 8 },
		accepts:       func(byte) bool { return true },
	},
}

func getMode(mode Mode) *modeEncoder {
	if mode >= 0 && int(mode) < len(modes) {
		return &modes[mode]
	}
	return nil
}

func (mode Mode) String() string {
	if m := getMode(mode); m != nil {
		return m.name
	}
	return strconv.Itoa(int(mode))
}

// Indicator returns the 4 bit mode indicator, or 0 if mode is invalid.
func (mode Mode) Indicator() byte {
	if m := getMode(mode); m != nil {
		return m.indicator
	}
	return 0
}

// CountLength returns the length of the character count field in
// bits for mode at the given size class, or 0 if mode is invalid.
func (mode Mode) CountLength(class int) int {
	if m := getMode(mode); m != nil {
		return int(m.countLength[class])
	}
	return 0
}

// CountLength returns the length of the character count field in
// bits for mode at version v.
func CountLength(v Version, mode Mode) int {
	return mode.CountLength(v.SizeClass())
}

// EncodedLength returns the length in bits of the data part of a
// valid string of n bytes encoded in mode.
func (mode Mode) EncodedLength(n int) int {
	if m := getMode(mode); m != nil {
		return m.encodedLength(n)
	}
	return 0
}

// Length returns the length in bits of a valid string of n bytes
// encoded in mode at the given size class, including the header.
// Length returns 0 if and only if mode is invalid.
func (mode Mode) Length(n, class int) int {
	m := getMode(mode)
	if m == nil {
		return 0
	}
	return 4 + int(m.countLength[class]) + m.encodedLength(n)
}

// Is reports whether c is encodable in mode.
func Is(c byte, mode Mode) bool {
	m := getMode(mode)
	return m != nil && m.accepts(c)
}

// Analyze returns the most compact mode able to encode all of text.
// Digits keep the current mode, other alphanumeric characters select
// Alphanumeric, and any other byte selects Byte.
func Analyze(text string) Mode {
	mode := Numeric
	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case isDigit(c):
		case isAlpha(c):
			mode = Alphanumeric
		default:
			return Byte
		}
	}
	return mode
}

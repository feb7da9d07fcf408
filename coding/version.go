// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"strconv"
)

var (
	ErrLevel   = errors.New("qr: invalid level")
	ErrVersion = errors.New("qr: invalid version")
)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Versions run from 1 to 40: the larger the version, the more
// information the code can store.
type Version int

// Version range.
const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is a QR version.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// QR version size classes.  The length of the character count field
// depends on the size class.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// ClassRange returns the lowest and highest versions in size class.
func ClassRange(class int) (min, max Version) {
	r := [3][2]Version{{1, 9}, {10, 26}, {27, 40}}[class]
	return r[0], r[1]
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is a QR error correction level.
func (l Level) IsValid() bool { return L <= l && l <= H }

// check returns an error if v or l is out of range.
func check(v Version, l Level) error {
	if !v.IsValid() {
		return ErrVersion
	}
	if !l.IsValid() {
		return ErrLevel
	}
	return nil
}

// DataBytes returns the number of data codewords that can be
// stored in a QR code with the given version and level, or 0 if
// either is invalid.
func (v Version) DataBytes(l Level) int {
	if check(v, l) != nil {
		return 0
	}
	vt := &vtab[v]
	lev := vt.level[l]
	return vt.bytes - lev.nblock*lev.check
}

// DataBits returns the number of data bits that can be
// stored in a QR code with the given version and level.
func (v Version) DataBits(l Level) int { return v.DataBytes(l) * 8 }

// TotalBytes returns the number of data and check codewords in a QR
// code with version v, or 0 if v is invalid.
func (v Version) TotalBytes() int {
	if !v.IsValid() {
		return 0
	}
	return vtab[v].bytes
}

// A Block describes a group of error correction blocks of the same
// size.  Each of the Count blocks carries DataBytes data codewords
// followed by CheckBytes check codewords.
type Block struct {
	Count      int
	DataBytes  int
	CheckBytes int
}

// Blocks returns the error correction block structure for the given
// version and level: one group, or two groups with the longer blocks
// last.  The data codewords are split into blocks in order.
func (v Version) Blocks(l Level) []Block {
	if check(v, l) != nil {
		return nil
	}
	lev := vtab[v].level[l]
	nd := v.DataBytes(l)
	db := nd / lev.nblock
	long := nd - db*lev.nblock
	b := []Block{{lev.nblock - long, db, lev.check}}
	if long != 0 {
		b = append(b, Block{long, db + 1, lev.check})
	}
	return b
}

// FitVersion returns the lowest version storing n data bits at level l
// with the character count field lengths of size class.  It reports
// false if no version in the class is large enough.
func FitVersion(l Level, n, class int) (Version, bool) {
	v, max := ClassRange(class)
	if max.DataBits(l) < n {
		return 0, false
	}
	for v < max {
		if mid := (v + max) / 2; mid.DataBits(l) < n {
			v = mid + 1
		} else {
			max = mid
		}
	}
	return v, true
}

// A version describes metadata associated with a version.
type version struct {
	bytes int      // total codewords
	level [4]level // error correction per level
}

type level struct {
	nblock int // number of blocks
	check  int // check codewords per block
}

// vtab was generated by gen.go.
var vtab = [MaxVersion + 1]version{
	{},
	{26, [4]level{{1, 7}, {1, 10}, {1, 13}, {1, 17}}}, // 1
	{44, [4]level{{1, 10}, {1, 16}, {1, 22}, {1, 28}}}, // 2
	{70, [4]level{{1, 15}, {1, 26}, {2, 18}, {2, 22}}}, // 3
	{100, [4]level{{1, 20}, {2, 18}, {2, 26}, {4, 16}}}, // 4
	{134, [4]level{{1, 26}, {2, 24}, {4, 18}, {4, 22}}}, // 5
	{172, [4]level{{2, 18}, {4, 16}, {4, 24}, {4, 28}}}, // 6
	{196, [4]level{{2, 20}, {4, 18}, {6, 18}, {5, 26}}}, // 7
	{242, [4]level{{2, 24}, {4, 22}, {6, 22}, {6, 26}}}, // 8
	{292, [4]level{{2, 30}, {5, 22}, {8, 20}, {8, 24}}}, // 9
	{346, [4]level{{4, 18}, {5, 26}, {8, 24}, {8, 28}}}, // 10
	{404, [4]level{{4, 20}, {5, 30}, {8, 28}, {11, 24}}}, // 11
	{466, [4]level{{4, 24}, {8, 22}, {10, 26}, {11, 28}}}, // 12
	{532, [4]level{{4, 26}, {9, 22}, {12, 24}, {16, 22}}}, // 13
	{581, [4]level{{4, 30}, {9, 24}, {16, 20}, {16, 24}}}, // 14
	{655, [4]level{{6, 22}, {10, 24}, {12, 30}, {18, 24}}}, // 15
	{733, [4]level{{6, 24}, {10, 28}, {17, 24}, {16, 30}}}, // 16
	{815, [4]level{{6, 28}, {11, 28}, {16, 28}, {19, 28}}}, // 17
	{901, [4]level{{6, 30}, {13, 26}, {18, 28}, {21, 28}}}, // 18
	{991, [4]level{{7, 28}, {14, 26}, {21, 26}, {25, 26}}}, // 19
	{1085, [4]level{{8, 28}, {16, 26}, {20, 30}, {25, 28}}}, // 20
	{1156, [4]level{{8, 28}, {17, 26}, {23, 28}, {25, 30}}}, // 21
	{1258, [4]level{{9, 28}, {17, 28}, {23, 30}, {34, 24}}}, // 22
	{1364, [4]level{{9, 30}, {18, 28}, {25, 30}, {30, 30}}}, // 23
	{1474, [4]level{{10, 30}, {20, 28}, {27, 30}, {32, 30}}}, // 24
	{1588, [4]level{{12, 26}, {21, 28}, {29, 30}, {35, 30}}}, // 25
	{1706, [4]level{{12, 28}, {23, 28}, {34, 28}, {37, 30}}}, // 26
	{1828, [4]level{{12, 30}, {25, 28}, {34, 30}, {40, 30}}}, // 27
	{1921, [4]level{{13, 30}, {26, 28}, {35, 30}, {42, 30}}}, // 28
	{2051, [4]level{{14, 30}, {28, 28}, {38, 30}, {45, 30}}}, // 29
	{2185, [4]level{{15, 30}, {29, 28}, {40, 30}, {48, 30}}}, // 30
	{2323, [4]level{{16, 30}, {31, 28}, {43, 30}, {51, 30}}}, // 31
	{2465, [4]level{{17, 30}, {33, 28}, {45, 30}, {54, 30}}}, // 32
	{2611, [4]level{{18, 30}, {35, 28}, {48, 30}, {57, 30}}}, // 33
	{2761, [4]level{{19, 30}, {37, 28}, {51, 30}, {60, 30}}}, // 34
	{2876, [4]level{{19, 30}, {38, 28}, {53, 30}, {63, 30}}}, // 35
	{3034, [4]level{{20, 30}, {40, 28}, {56, 30}, {66, 30}}}, // 36
	{3196, [4]level{{21, 30}, {43, 28}, {59, 30}, {70, 30}}}, // 37
	{3362, [4]level{{22, 30}, {45, 28}, {62, 30}, {74, 30}}}, // 38
	{3532, [4]level{{24, 30}, {47, 28}, {65, 30}, {77, 30}}}, // 39
	{3706, [4]level{{25, 30}, {49, 28}, {68, 30}, {81, 30}}}, // 40
}

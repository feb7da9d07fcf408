// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes text into QR code data codewords.

The text is encoded as a single segment in the most compact of the
numeric, alphanumeric and byte modes able to hold all of it, followed
by the terminator and pad codewords.  Error correction and symbol
placement are left to the caller; Data.Blocks splits the codewords
into error correction blocks for that purpose.
*/
package qr // import "github.com/unixdj/qrdata"

import (
	"errors"

	"github.com/unixdj/qrdata/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level = coding.Level

const (
	L = coding.L // 20% redundant
	M = coding.M // 38% redundant
	Q = coding.Q // 55% redundant
	H = coding.H // 65% redundant
)

// A Version denotes a QR version, from 1 to 40.
type Version = coding.Version

// A Mode denotes a QR segment encoding mode.
type Mode = coding.Mode

// Encoding modes.
const (
	Numeric      = coding.Numeric
	Alphanumeric = coding.Alphanumeric
	Byte         = coding.Byte
)

var (
	ErrTooLong  = errors.New("qr: text too long to encode as QR")
	ErrCapacity = coding.ErrCapacity
	ErrLevel    = coding.ErrLevel
	ErrVersion  = coding.ErrVersion
)

// Data holds the data codewords of a QR code.
type Data struct {
	Version   Version // QR code version
	Level     Level   // error correction level
	Mode      Mode    // encoding mode of the text
	Codewords []byte  // data codewords, including padding
}

// Encode returns an encoding of text at the given error correction
// level in the smallest version able to hold it.
func Encode(text string, level Level) (*Data, error) {
	if !level.IsValid() {
		return nil, ErrLevel
	}
	mode := coding.Analyze(text)
	// The count field grows with the size class, so the encoded
	// length is recalculated for each class.
	for class := coding.Class0; class <= coding.Class2; class++ {
		n := mode.Length(len(text), class)
		if v, ok := coding.FitVersion(level, n, class); ok {
			return EncodeVersion(text, v, level)
		}
	}
	return nil, ErrTooLong
}

// EncodeVersion returns an encoding of text at the given version and
// error correction level.  If text does not fit, the error matches
// ErrCapacity.
func EncodeVersion(text string, version Version, level Level) (*Data, error) {
	cw, mode, err := coding.Encode(text, version, level)
	if err != nil {
		return nil, err
	}
	return &Data{version, level, mode, cw}, nil
}

// Blocks splits the codewords into error correction blocks in the
// order they are to be interleaved.  The blocks share storage with
// d.Codewords.  Blocks returns nil if the version or level is invalid
// or the number of codewords does not match them.
func (d *Data) Blocks() [][]byte {
	cw := d.Codewords
	if len(cw) == 0 || len(cw) != d.Version.DataBytes(d.Level) {
		return nil
	}
	var b [][]byte
	for _, g := range d.Version.Blocks(d.Level) {
		for i := 0; i < g.Count; i++ {
			b = append(b, cw[:g.DataBytes:g.DataBytes])
			cw = cw[g.DataBytes:]
		}
	}
	return b
}

// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR data coding details.
package coding // import "github.com/unixdj/qrdata/coding"

// Encoder encodes QR data codewords for a version and level.
type Encoder struct {
	v Version
	l Level
	b *Bits
}

// NewEncoder returns an Encoder for the given version and level.
func NewEncoder(version Version, level Level) (*Encoder, error) {
	if err := check(version, level); err != nil {
		return nil, err
	}
	return &Encoder{version, level, NewBits(version, level)}, nil
}

func (e *Encoder) Version() Version { return e.v }
func (e *Encoder) Level() Level     { return e.l }

func (e *Encoder) Reset() { e.b.Reset() }

// Write adds text to e.  Segments preceding an invalid one stay
// written; call Reset to discard them after an error.
func (e *Encoder) Write(text ...Segment) error {
	class := e.v.SizeClass()
	for _, t := range text {
		if err := t.Encode(e.b, class); err != nil {
			return err
		}
	}
	return nil
}

// Codewords adds terminator and padding to the data written to e and
// returns the data codewords.  The length of the returned slice is
// the capacity of the version and level.  e is left empty.
func (e *Encoder) Codewords() ([]byte, error) {
	if err := e.b.PadTo(e.v.DataBytes(e.l)); err != nil {
		e.Reset()
		return nil, err
	}
	cw, _ := e.b.Parts()
	e.b.b = make([]byte, 0, cap(cw))
	return cw, nil
}

// Encode returns the data codewords for text encoded as a single
// segment at the given version and level, and the mode used.  The
// mode is the most compact one accepting all of text.
func Encode(text string, version Version, level Level) ([]byte, Mode, error) {
	e, err := NewEncoder(version, level)
	if err != nil {
		return nil, 0, err
	}
	mode := Analyze(text)
	if err := e.Write(Segment{text, mode}); err != nil {
		return nil, 0, err
	}
	cw, err := e.Codewords()
	if err != nil {
		return nil, 0, err
	}
	return cw, mode, nil
}

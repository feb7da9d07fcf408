// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"

	qr "github.com/unixdj/qrdata"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// A record is an encoded text as written by the yaml and cbor formats.
type record struct {
	Text      string   `yaml:"text" cbor:"1,keyasint"`
	Version   int      `yaml:"version" cbor:"2,keyasint"`
	Level     string   `yaml:"level" cbor:"3,keyasint"`
	Mode      string   `yaml:"mode" cbor:"4,keyasint"`
	Codewords []byte   `yaml:"-" cbor:"5,keyasint"`
	Hex       string   `yaml:"codewords" cbor:"-"`
	Blocks    []string `yaml:"blocks,flow" cbor:"-"`

	data *qr.Data
}

func newRecord(text string, d *qr.Data) record {
	r := record{
		Text:      text,
		Version:   int(d.Version),
		Level:     d.Level.String(),
		Mode:      d.Mode.String(),
		Codewords: d.Codewords,
		Hex:       hex.EncodeToString(d.Codewords),
		data:      d,
	}
	for _, b := range d.Blocks() {
		r.Blocks = append(r.Blocks, hex.EncodeToString(b))
	}
	return r
}

var formatNames = []string{"raw", "hex", "bin", "yaml", "cbor"}

var formats = [...]func(io.Writer, []record) error{
	writeRaw,
	writeHex,
	writeBin,
	writeYAML,
	writeCBOR,
}

func writeRaw(w io.Writer, recs []record) error {
	for _, r := range recs {
		if _, err := w.Write(r.Codewords); err != nil {
			return err
		}
	}
	return nil
}

// lines returns the codewords of r, split into blocks if -B is set.
func (r record) lines() [][]byte {
	if g.blocks {
		return r.data.Blocks()
	}
	return [][]byte{r.Codewords}
}

func writeHex(w io.Writer, recs []record) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		for _, l := range r.lines() {
			for i, c := range l {
				if i != 0 {
					bw.WriteByte(' ')
				}
				fmt.Fprintf(bw, "%02x", c)
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

func writeBin(w io.Writer, recs []record) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		for _, l := range r.lines() {
			for i, c := range l {
				if i != 0 {
					bw.WriteByte(' ')
				}
				fmt.Fprintf(bw, "%08b", c)
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

func writeYAML(w io.Writer, recs []record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(recs); err != nil {
		return err
	}
	return enc.Close()
}

// cborMode encodes records with Core Deterministic Encoding, so the
// same codewords always produce the same bytes.
var cborMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("qrdata: CBOR encoder initialization failed: " + err.Error())
	}
	return em
}()

func writeCBOR(w io.Writer, recs []record) error {
	return cborMode.NewEncoder(w).Encode(recs)
}

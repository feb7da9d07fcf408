// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	qr "github.com/unixdj/qrdata"

	"gopkg.in/yaml.v3"
)

// A job is a text to encode.  Zero Version and empty Level are
// replaced by the defaults.
type job struct {
	Text    string `yaml:"text"`
	Version int    `yaml:"version"`
	Level   string `yaml:"level"`
}

// readBatch reads a YAML list of jobs.
func readBatch(r io.Reader) ([]job, error) {
	var jobs []job
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&jobs); err != nil && err != io.EOF {
		return nil, fmt.Errorf("batch: %w", err)
	}
	return jobs, nil
}

// parseLevel parses an error correction level letter.
func parseLevel(s string) (qr.Level, error) {
	if len(s) != 1 || !strings.Contains("lmqhLMQH", s) {
		return 0, fmt.Errorf("%q: %w", s, qr.ErrLevel)
	}
	return qr.Level(strings.Index("lmqhLMQH", s) & 3), nil
}

// encode encodes j with the given default version and level.
func (j job) encode(ver qr.Version, lev qr.Level) (record, error) {
	if j.Version != 0 {
		ver = qr.Version(j.Version)
	}
	if j.Level != "" {
		var err error
		if lev, err = parseLevel(j.Level); err != nil {
			return record{}, err
		}
	}
	text := j.Text
	if g.upper {
		text = strings.ToUpper(text)
	}
	if g.latin1 {
		var err error
		if text, err = qr.Latin1(text); err != nil {
			return record{}, err
		}
	}
	var (
		d   *qr.Data
		err error
	)
	if ver == 0 {
		d, err = qr.Encode(text, lev)
	} else {
		d, err = qr.EncodeVersion(text, ver, lev)
	}
	if err != nil {
		return record{}, err
	}
	return newRecord(j.Text, d), nil
}

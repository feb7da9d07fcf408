// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qrdata prints QR code data codewords.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	qr "github.com/unixdj/qrdata"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	lev    qr.Level   // QR correction level
	ver    qr.Version // QR version, 0 for smallest
	format int        // output format
	fn     string     // output filename
	batch  string     // batch filename
	latin1 bool       // Latin-1 byte mode
	upper  bool       // uppercase
	blocks bool       // split hex output into blocks
}{}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "QR code data codeword encoder\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  Defaults: smallest version, level L, UTF-8 input.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qrdata version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(&g.latin1, '1', "convert input to Latin-1")
	getopt.Flag(&g.upper, 'i', "ignore case, convert input to uppercase")
	getopt.Flag(&g.blocks, 'B', "print error correction blocks "+
		"on separate lines; only for types hex and bin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	getopt.Flag(&g.batch, 'b', `read a YAML list of entries with `+
		`"text", "version" and "level" from file, or "-" for `+
		`standard input; -v and -l set defaults`, "file")
	ver := getopt.Unsigned('v', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 40},
		"QR code version, 0 for the smallest fitting", "ver")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level, lowest to highest", "l|m|q|h")
	ff := getopt.Enum('t', formatNames, "", `output format, one of: `+
		strings.Join(formatNames, ", ")+
		`; if no -o is given and standard output is a TTY, `+
		`default is hex, otherwise raw`, "type")

	getopt.Parse()
	if g.batch != "" && len(getopt.Args()) != 0 {
		fmt.Fprintln(os.Stderr, "-b and string arguments are incompatible")
		usage()
	}
	g.ver = qr.Version(*ver)
	var err error
	if g.lev, err = parseLevel(*lev); err != nil {
		log.Fatalln(err)
	}
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "hex"
		} else {
			*ff = "raw"
		}
	}
	for i, v := range formatNames {
		if *ff == v {
			g.format = i
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var jobs []job
	if g.batch != "" {
		r := os.Stdin
		if g.batch != "-" {
			f, err := os.Open(g.batch)
			if err != nil {
				log.Fatalln(err)
			}
			defer f.Close()
			r = f
		}
		var err error
		if jobs, err = readBatch(r); err != nil {
			log.Fatalln(err)
		}
	} else {
		var s string
		if args := getopt.Args(); len(args) != 0 {
			s = strings.Join(args, " ")
		} else {
			var b strings.Builder
			if _, err := io.Copy(&b, os.Stdin); err != nil {
				log.Fatalln(err)
			}
			s, _ = strings.CutSuffix(
				strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
		}
		jobs = []job{{Text: s}}
	}

	recs := make([]record, 0, len(jobs))
	for i, j := range jobs {
		rec, err := j.encode(g.ver, g.lev)
		if err != nil {
			if len(jobs) > 1 {
				log.Fatalf("entry %d: %v", i+1, err)
			}
			log.Fatalln(err)
		}
		recs = append(recs, rec)
	}
	write(recs)
}

func write(recs []record) {
	var w = os.Stdout
	if g.fn != "" {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	err := formats[g.format](w, recs)
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

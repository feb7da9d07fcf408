// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr_test

import (
	"fmt"
	"log"

	qr "github.com/unixdj/qrdata"
)

func ExampleEncode() {
	d, err := qr.Encode("01234567", qr.M)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println(d.Version, d.Level, d.Mode)
	fmt.Printf("% x\n", d.Codewords)
	// Output:
	// 1 M numeric
	// 10 20 0c 56 61 80 ec 11 ec 11 ec 11 ec 11 ec 11
}

func ExampleData_Blocks() {
	d, err := qr.EncodeVersion("HELLO WORLD", 5, qr.Q)
	if err != nil {
		log.Fatalln(err)
	}
	for _, b := range d.Blocks() {
		fmt.Println(len(b))
	}
	// Output:
	// 15
	// 15
	// 16
	// 16
}

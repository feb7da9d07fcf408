// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"errors"

	"golang.org/x/text/encoding/charmap"
)

var ErrNotLatin1 = errors.New("qr: text not encodable as ISO 8859-1")

// Latin1 converts UTF-8 text to ISO 8859-1, the default character set
// of byte mode.  Characters above U+00FF are not encodable.
func Latin1(s string) (string, error) {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			t, err := charmap.ISO8859_1.NewEncoder().String(s)
			if err != nil {
				return "", ErrNotLatin1
			}
			return t, nil
		}
	}
	return s, nil
}

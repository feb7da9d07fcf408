// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		text string
		mode Mode
	}{
		{"", Numeric},
		{"123", Numeric},
		{"0000000000", Numeric},
		{"AB 12", Alphanumeric},
		{"12AB", Alphanumeric},
		{"HTTP://EXAMPLE.COM/$%*+-", Alphanumeric},
		{"AB12é", Byte},
		{"éAB12", Byte},
		{"123a", Byte},
		{"ab", Byte},
		{"12\n", Byte},
		{"A\x00", Byte},
		{"#", Byte},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.mode, Analyze(tt.text), "%q", tt.text)
	}
}

func TestAnalyzeByte(t *testing.T) {
	// Every byte outside Alphabet selects byte mode wherever it is.
	for c := 0; c < 256; c++ {
		if Is(byte(c), Alphanumeric) {
			continue
		}
		for _, s := range []string{"", "1", "A1"} {
			assert.Equal(t, Byte, Analyze(s+string([]byte{byte(c)})+"9"),
				"byte %#02x after %q", c, s)
		}
	}
}

func TestAlphabet(t *testing.T) {
	assert.Len(t, Alphabet, 45)
	seen := map[byte]bool{}
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		assert.Equal(t, byte(i), AlphaValue(c), "%q", c)
		assert.True(t, Is(c, Alphanumeric), "%q", c)
		assert.False(t, seen[c], "duplicate %q", c)
		seen[c] = true
	}
	for c := 0; c < 256; c++ {
		if !seen[byte(c)] {
			assert.Zero(t, AlphaValue(byte(c)), "%#02x", c)
			assert.False(t, Is(byte(c), Alphanumeric), "%#02x", c)
		}
		assert.Equal(t, '0' <= c && c <= '9', Is(byte(c), Numeric), "%#02x", c)
		assert.True(t, Is(byte(c), Byte))
	}
}

func TestCountLength(t *testing.T) {
	want := map[Mode][3]int{
		Numeric:      {10, 12, 14},
		Alphanumeric: {9, 11, 13},
		Byte:         {8, 16, 16},
	}
	for v := MinVersion; v <= MaxVersion; v++ {
		band := 0
		switch {
		case v >= 27:
			band = 2
		case v >= 10:
			band = 1
		}
		for mode, w := range want {
			assert.Equal(t, w[band], CountLength(v, mode), "%v version %v", mode, v)
		}
	}
	assert.Zero(t, Mode(3).CountLength(Class0))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "numeric", Numeric.String())
	assert.Equal(t, "alphanumeric", Alphanumeric.String())
	assert.Equal(t, "byte", Byte.String())
	assert.Equal(t, "9", Mode(9).String())
	assert.Equal(t, []byte{1, 2, 4, 0},
		[]byte{Numeric.Indicator(), Alphanumeric.Indicator(),
			Byte.Indicator(), Mode(-1).Indicator()})
}

func TestModeLength(t *testing.T) {
	tests := []struct {
		mode  Mode
		n     int
		class int
		bits  int
	}{
		{Numeric, 1, Class0, 4 + 10 + 4},
		{Numeric, 2, Class0, 4 + 10 + 7},
		{Numeric, 3, Class0, 4 + 10 + 10},
		{Numeric, 17, Class1, 4 + 12 + 57},
		{Alphanumeric, 11, Class0, 4 + 9 + 61},
		{Alphanumeric, 2, Class2, 4 + 13 + 11},
		{Byte, 5, Class1, 4 + 16 + 40},
		{Mode(5), 5, Class1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.bits, tt.mode.Length(tt.n, tt.class),
			"%v %d class %d", tt.mode, tt.n, tt.class)
	}
}

// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataBytes(t *testing.T) {
	tests := []struct {
		v    Version
		data [4]int
	}{
		{1, [4]int{19, 16, 13, 9}},
		{2, [4]int{34, 28, 22, 16}},
		{4, [4]int{80, 64, 48, 36}},
		{8, [4]int{194, 154, 110, 86}},
		{9, [4]int{232, 182, 132, 100}},
		{10, [4]int{274, 216, 154, 122}},
		{26, [4]int{1370, 1062, 754, 596}},
		{27, [4]int{1468, 1128, 808, 628}},
		{40, [4]int{2956, 2334, 1666, 1276}},
	}
	for _, tt := range tests {
		for l := L; l <= H; l++ {
			assert.Equal(t, tt.data[l], tt.v.DataBytes(l), "%v-%v", tt.v, l)
			assert.Equal(t, tt.data[l]*8, tt.v.DataBits(l), "%v-%v", tt.v, l)
		}
	}
}

func TestCapacityOrder(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		siz := int(4*v + 17)
		assert.LessOrEqual(t, v.TotalBytes()*8, siz*siz, "version %v", v)
		for l := L; l < H; l++ {
			assert.Greater(t, v.DataBytes(l), v.DataBytes(l+1), "%v-%v", v, l)
		}
		if v > MinVersion {
			for l := L; l <= H; l++ {
				assert.Greater(t, v.DataBytes(l), (v-1).DataBytes(l), "%v-%v", v, l)
			}
		}
	}
}

func TestBlocks(t *testing.T) {
	assert.Equal(t, []Block{{1, 19, 7}}, Version(1).Blocks(L))
	assert.Equal(t, []Block{{2, 15, 18}, {2, 16, 18}}, Version(5).Blocks(Q))
	assert.Equal(t, []Block{{3, 15, 30}, {13, 16, 30}}, Version(16).Blocks(H))
	assert.Equal(t, []Block{{19, 118, 30}, {6, 119, 30}}, Version(40).Blocks(L))
	assert.Equal(t, []Block{{20, 15, 30}, {61, 16, 30}}, Version(40).Blocks(H))

	for v := MinVersion; v <= MaxVersion; v++ {
		for l := L; l <= H; l++ {
			var data, total int
			for _, b := range v.Blocks(l) {
				require.Positive(t, b.Count)
				data += b.Count * b.DataBytes
				total += b.Count * (b.DataBytes + b.CheckBytes)
			}
			assert.Equal(t, v.DataBytes(l), data, "%v-%v", v, l)
			assert.Equal(t, v.TotalBytes(), total, "%v-%v", v, l)
		}
	}
}

func TestInvalidVersionLevel(t *testing.T) {
	for _, v := range []Version{0, -1, MaxVersion + 1} {
		assert.Zero(t, v.DataBytes(L), "%d", v)
		assert.Zero(t, v.DataBits(L), "%d", v)
		assert.Zero(t, v.TotalBytes(), "%d", v)
		assert.Nil(t, v.Blocks(L), "%d", v)
	}
	for _, l := range []Level{-1, H + 1} {
		assert.Zero(t, Version(1).DataBytes(l), "%d", l)
		assert.Nil(t, Version(1).Blocks(l), "%d", l)
	}
}

func TestSizeClass(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		class := v.SizeClass()
		min, max := ClassRange(class)
		assert.True(t, min <= v && v <= max, "version %v class %d", v, class)
	}
}

func TestFitVersion(t *testing.T) {
	tests := []struct {
		l     Level
		bits  int
		class int
		v     Version
		ok    bool
	}{
		{H, 0, Class0, 1, true},
		{H, 72, Class0, 1, true},
		{H, 73, Class0, 2, true},
		{L, 232 * 8, Class0, 9, true},
		{L, 232*8 + 1, Class0, 0, false},
		{L, 232*8 + 1, Class1, 10, true},
		{M, 1128 * 8, Class2, 27, true},
		{L, 2956 * 8, Class2, 40, true},
		{L, 2956*8 + 1, Class2, 0, false},
	}
	for _, tt := range tests {
		v, ok := FitVersion(tt.l, tt.bits, tt.class)
		assert.Equal(t, tt.ok, ok, "%v %d bits class %d", tt.l, tt.bits, tt.class)
		assert.Equal(t, tt.v, v, "%v %d bits class %d", tt.l, tt.bits, tt.class)
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "LMQH", L.String()+M.String()+Q.String()+H.String())
	assert.Equal(t, "7", Level(7).String())
	assert.Equal(t, "40", MaxVersion.String())
}

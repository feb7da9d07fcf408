//go:build ignore

// Gen prints the version table for version.go.
//
//	go run gen.go
package main

import (
	"fmt"
	"log"
	"os"
)

// tables from qrencode-3.1.1/qrspec.c

var capacity = [41]struct {
	words int
	ec    [4]int
}{
	{0, [4]int{0, 0, 0, 0}},
	{26, [4]int{7, 10, 13, 17}}, // 1
	{44, [4]int{10, 16, 22, 28}},
	{70, [4]int{15, 26, 36, 44}},
	{100, [4]int{20, 36, 52, 64}},
	{134, [4]int{26, 48, 72, 88}}, // 5
	{172, [4]int{36, 64, 96, 112}},
	{196, [4]int{40, 72, 108, 130}},
	{242, [4]int{48, 88, 132, 156}},
	{292, [4]int{60, 110, 160, 192}},
	{346, [4]int{72, 130, 192, 224}}, //10
	{404, [4]int{80, 150, 224, 264}},
	{466, [4]int{96, 176, 260, 308}},
	{532, [4]int{104, 198, 288, 352}},
	{581, [4]int{120, 216, 320, 384}},
	{655, [4]int{132, 240, 360, 432}}, //15
	{733, [4]int{144, 280, 408, 480}},
	{815, [4]int{168, 308, 448, 532}},
	{901, [4]int{180, 338, 504, 588}},
	{991, [4]int{196, 364, 546, 650}},
	{1085, [4]int{224, 416, 600, 700}}, //20
	{1156, [4]int{224, 442, 644, 750}},
	{1258, [4]int{252, 476, 690, 816}},
	{1364, [4]int{270, 504, 750, 900}},
	{1474, [4]int{300, 560, 810, 960}},
	{1588, [4]int{312, 588, 870, 1050}}, //25
	{1706, [4]int{336, 644, 952, 1110}},
	{1828, [4]int{360, 700, 1020, 1200}},
	{1921, [4]int{390, 728, 1050, 1260}},
	{2051, [4]int{420, 784, 1140, 1350}},
	{2185, [4]int{450, 812, 1200, 1440}}, //30
	{2323, [4]int{480, 868, 1290, 1530}},
	{2465, [4]int{510, 924, 1350, 1620}},
	{2611, [4]int{540, 980, 1440, 1710}},
	{2761, [4]int{570, 1036, 1530, 1800}},
	{2876, [4]int{570, 1064, 1590, 1890}}, //35
	{3034, [4]int{600, 1120, 1680, 1980}},
	{3196, [4]int{630, 1204, 1770, 2100}},
	{3362, [4]int{660, 1260, 1860, 2220}},
	{3532, [4]int{720, 1316, 1950, 2310}},
	{3706, [4]int{750, 1372, 2040, 2430}}, //40
}

// eccTable lists the number of blocks in the two block groups.
var eccTable = [41][4][2]int{
	{{0, 0}, {0, 0}, {0, 0}, {0, 0}},
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}}, // 1
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}},
	{{1, 0}, {1, 0}, {2, 0}, {2, 0}},
	{{1, 0}, {2, 0}, {2, 0}, {4, 0}},
	{{1, 0}, {2, 0}, {2, 2}, {2, 2}}, // 5
	{{2, 0}, {4, 0}, {4, 0}, {4, 0}},
	{{2, 0}, {4, 0}, {2, 4}, {4, 1}},
	{{2, 0}, {2, 2}, {4, 2}, {4, 2}},
	{{2, 0}, {3, 2}, {4, 4}, {4, 4}},
	{{2, 2}, {4, 1}, {6, 2}, {6, 2}}, //10
	{{4, 0}, {1, 4}, {4, 4}, {3, 8}},
	{{2, 2}, {6, 2}, {4, 6}, {7, 4}},
	{{4, 0}, {8, 1}, {8, 4}, {12, 4}},
	{{3, 1}, {4, 5}, {11, 5}, {11, 5}},
	{{5, 1}, {5, 5}, {5, 7}, {11, 7}}, //15
	{{5, 1}, {7, 3}, {15, 2}, {3, 13}},
	{{1, 5}, {10, 1}, {1, 15}, {2, 17}},
	{{5, 1}, {9, 4}, {17, 1}, {2, 19}},
	{{3, 4}, {3, 11}, {17, 4}, {9, 16}},
	{{3, 5}, {3, 13}, {15, 5}, {15, 10}}, //20
	{{4, 4}, {17, 0}, {17, 6}, {19, 6}},
	{{2, 7}, {17, 0}, {7, 16}, {34, 0}},
	{{4, 5}, {4, 14}, {11, 14}, {16, 14}},
	{{6, 4}, {6, 14}, {11, 16}, {30, 2}},
	{{8, 4}, {8, 13}, {7, 22}, {22, 13}}, //25
	{{10, 2}, {19, 4}, {28, 6}, {33, 4}},
	{{8, 4}, {22, 3}, {8, 26}, {12, 28}},
	{{3, 10}, {3, 23}, {4, 31}, {11, 31}},
	{{7, 7}, {21, 7}, {1, 37}, {19, 26}},
	{{5, 10}, {19, 10}, {15, 25}, {23, 25}}, //30
	{{13, 3}, {2, 29}, {42, 1}, {23, 28}},
	{{17, 0}, {10, 23}, {10, 35}, {19, 35}},
	{{17, 1}, {14, 21}, {29, 19}, {11, 46}},
	{{13, 6}, {14, 23}, {44, 7}, {59, 1}},
	{{12, 7}, {12, 26}, {39, 14}, {22, 41}}, //35
	{{6, 14}, {6, 34}, {46, 10}, {2, 64}},
	{{17, 4}, {29, 14}, {49, 10}, {24, 46}},
	{{4, 18}, {13, 32}, {48, 14}, {42, 32}},
	{{20, 4}, {40, 7}, {43, 22}, {10, 67}},
	{{19, 6}, {18, 31}, {34, 34}, {20, 61}}, //40
}

func main() {
	log.SetFlags(0)
	w := os.Stdout
	fmt.Fprintln(w, "var vtab = [MaxVersion + 1]version{\n\t{},")
	for v := 1; v < len(capacity); v++ {
		c := &capacity[v]
		fmt.Fprintf(w, "\t{%d, [4]level{", c.words)
		for l, blk := range eccTable[v] {
			nblock := blk[0] + blk[1]
			if c.ec[l]%nblock != 0 {
				log.Fatalf("version %d level %d: %d check words in %d blocks",
					v, l, c.ec[l], nblock)
			}
			if l > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "{%d, %d}", nblock, c.ec[l]/nblock)
		}
		fmt.Fprintf(w, "}}, // %d\n", v)
	}
	fmt.Fprintln(w, "}")
}

package demo

import "strings"

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// brailleArea draws levels in [0, 1] as a filled area chart. Each cell holds
// two levels side by side and four dot rows, so len(levels) should be 2·cols.
func brailleArea(levels []float64, cols, rows int) []string {
	dotRows := rows * 4
	out := make([]string, rows)
	for row := range rows {
		var line strings.Builder
		for col := range cols {
			var pattern uint
			for dx := range 2 {
				dc := col*2 + dx
				if dc >= len(levels) {
					continue
				}
				level := levels[dc] * float64(dotRows)
				for dy := range 4 {
					fromBottom := float64(dotRows - 1 - (row*4 + dy))
					if level > fromBottom {
						pattern |= 1 << brailleBits[dx][dy]
					}
				}
			}
			line.WriteRune(rune(0x2800 + pattern))
		}
		out[row] = line.String()
	}
	return out
}

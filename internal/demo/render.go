package demo

import (
	"math"
	"strings"
	"unicode/utf8"
)

// strip is one row of single-width runes.
type strip []rune

func newStrip(n int, fill rune) strip {
	if n < 0 {
		n = 0
	}
	s := make(strip, n)
	for i := range s {
		s[i] = fill
	}
	return s
}

// set writes r at i; out-of-range writes are dropped.
func (s strip) set(i int, r rune) {
	if i >= 0 && i < len(s) {
		s[i] = r
	}
}

// write copies text starting at i.
func (s strip) write(i int, text string) {
	for _, r := range text {
		s.set(i, r)
		i++
	}
}

// center writes text centred in s.
func (s strip) center(text string) {
	s.write((len(s)-utf8.RuneCountInString(text))/2, text)
}

func (s strip) String() string {
	return string(s)
}

// clampCol keeps a column inside [0, n).
func clampCol(c, n int) int {
	if c < 0 {
		return 0
	}
	if c >= n {
		return n - 1
	}
	return c
}

// padLines pads or trims view to exactly rows lines.
func padLines(view string, rows int) string {
	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// listRows renders rows of a list scrolled by offset virtual pixels. Rows
// above the first item or below the last are blank.
func (b *base) listRows(n int, offset float64, label func(i int) string) []strip {
	first := int(math.Floor(offset / b.rt.CellHeightPx))
	out := make([]strip, b.rows)
	for r := range out {
		i := first + r
		line := newStrip(b.cols, ' ')
		if i >= 0 && i < n {
			line.write(1, label(i))
		}
		out[r] = line
	}
	return out
}

// scrollbar returns the thumb row for offset in [0, limit], or -1 when
// nothing scrolls.
func scrollbar(rows int, offset, limit float64) int {
	if limit <= 0 || rows < 2 {
		return -1
	}
	frac := offset / limit
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return int(math.Round(frac * float64(rows-1)))
}

// withScrollbar draws a thumb in the last column of rows.
func withScrollbar(rows []strip, offset, limit float64) {
	thumb := scrollbar(len(rows), offset, limit)
	if thumb < 0 {
		return
	}
	for r, line := range rows {
		if r == thumb {
			line.set(len(line)-1, '┃')
		} else {
			line.set(len(line)-1, '│')
		}
	}
}

func joinStrips(rows []strip) string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

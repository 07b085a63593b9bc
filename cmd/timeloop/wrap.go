package main

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText splits s into lines no wider than width terminal cells
// CJK runes count as two cells; explicit newlines always break
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		var b strings.Builder
		w := 0
		for _, r := range para {
			rw := runewidth.RuneWidth(r)
			if w+rw > width && w > 0 {
				lines = append(lines, b.String())
				b.Reset()
				w = 0
			}
			b.WriteRune(r)
			w += rw
		}
		lines = append(lines, b.String())
	}
	return lines
}

// centerX returns the column that centers s in a row of width cells
func centerX(s string, width int) int {
	x := (width - runewidth.StringWidth(s)) / 2
	if x < 0 {
		return 0
	}
	return x
}

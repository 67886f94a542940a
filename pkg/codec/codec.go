// Package codec converts boards to and from their canonical text form.
//
// A board is written one line per row. 'x' marks a live cell and any other
// character a dead one ('.' by convention). Dead cells after the last live
// cell of a row are omitted, so the text need not be rectangular; the
// dimensions given to Decode restore them.
package codec

import (
	"strings"
	"unicode/utf8"

	"golife/pkg/core"
)

const (
	aliveRune = 'x'
	deadRune  = '.'
)

// Decode builds a grid from text. The grid has at least minRows rows and
// minCols columns and grows to fit the number of lines and the longest line.
func Decode(text string, minRows, minCols int) *core.Grid {
	lines := splitLines(text)
	rows, cols := extent(lines)

	g := core.NewGrid(max(minCols, cols), max(minRows, rows))
	cells := g.Cells()
	for i, line := range lines {
		j := 0
		for _, r := range line {
			cells[g.Index(i, j)] = r == aliveRune
			j++
		}
	}
	return g
}

// Encode writes the grid one row per line with trailing dead cells trimmed.
// Every row, including the last, ends with a newline.
func Encode(g *core.Grid) string {
	var b strings.Builder
	row := make([]byte, g.W)
	cells := g.Cells()
	for i := 0; i < g.H; i++ {
		for j := 0; j < g.W; j++ {
			if cells[g.Index(i, j)] {
				row[j] = aliveRune
			} else {
				row[j] = deadRune
			}
		}
		b.Write(trimDead(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Extent returns the number of lines in text and the length of the longest
// one, the smallest board the text describes.
func Extent(text string) (rows, cols int) {
	return extent(splitLines(text))
}

func extent(lines []string) (rows, cols int) {
	for _, line := range lines {
		cols = max(cols, utf8.RuneCountInString(line))
	}
	return len(lines), cols
}

func trimDead(row []byte) []byte {
	end := len(row)
	for end > 0 && row[end-1] == deadRune {
		end--
	}
	return row[:end]
}

// splitLines splits on '\n', dropping a '\r' before it. A trailing newline
// does not start an extra row.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

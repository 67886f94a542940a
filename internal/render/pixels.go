package render

import (
	"image/color"

	"golife/pkg/core"
)

// Palette holds the colours used to draw live and dead cells.
type Palette struct {
	Live color.Color
	Dead color.Color
}

// DefaultPalette draws live cells white on black.
func DefaultPalette() Palette {
	return Palette{Live: color.White, Dead: color.Black}
}

// fillBinaryRGBA converts live/dead cells into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []bool, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// CellAt maps a pixel inside a view of viewW*viewH pixels showing the whole
// board to the (row, col) under it. ok is false outside the view.
func CellAt(size core.Size, viewW, viewH, x, y int) (row, col int, ok bool) {
	if viewW <= 0 || viewH <= 0 || x < 0 || y < 0 || x >= viewW || y >= viewH {
		return 0, 0, false
	}
	row = size.H * y / viewH
	col = size.W * x / viewW
	return row, col, true
}

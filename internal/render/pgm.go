package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"golife/pkg/core"
)

const (
	pgmAlive = 255
	pgmDead  = 0
)

// ErrNotPGM reports input that is not an 8-bit binary (P5) PGM image.
var ErrNotPGM = errors.New("not a P5 pgm image")

// WritePGM writes the board as a binary PGM image, one pixel per cell with
// live cells at 255.
func WritePGM(w io.Writer, g *core.Grid) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n%d\n", g.W, g.H, pgmAlive); err != nil {
		return err
	}
	for _, c := range g.Cells() {
		px := byte(pgmDead)
		if c {
			px = pgmAlive
		}
		if err := bw.WriteByte(px); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadPGM reads a binary PGM image. Pixels equal to 255 are live cells.
func ReadPGM(r io.Reader) (*core.Grid, error) {
	br := bufio.NewReader(r)
	var header [4]int
	magic, err := pgmToken(br)
	if err != nil {
		return nil, err
	}
	if magic != "P5" {
		return nil, fmt.Errorf("%w: magic %q", ErrNotPGM, magic)
	}
	for i := 1; i < len(header); i++ {
		tok, err := pgmToken(br)
		if err != nil {
			return nil, err
		}
		if header[i], err = strconv.Atoi(tok); err != nil || header[i] <= 0 {
			return nil, fmt.Errorf("%w: header value %q", ErrNotPGM, tok)
		}
	}
	w, h, maxval := header[1], header[2], header[3]
	if maxval != pgmAlive {
		return nil, fmt.Errorf("%w: maxval %d", ErrNotPGM, maxval)
	}

	pixels := make([]byte, w*h)
	if _, err := io.ReadFull(br, pixels); err != nil {
		return nil, fmt.Errorf("read %dx%d pixels: %w", w, h, err)
	}
	g := core.NewGrid(w, h)
	cells := g.Cells()
	for i, px := range pixels {
		cells[i] = px == pgmAlive
	}
	return g, nil
}

// pgmToken reads one whitespace-delimited header token, skipping '#'
// comments. The single whitespace byte ending the token is consumed.
func pgmToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			if err == io.EOF {
				return "", fmt.Errorf("%w: truncated header", ErrNotPGM)
			}
			return "", err
		}
		switch {
		case b == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

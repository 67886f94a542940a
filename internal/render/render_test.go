package render

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"golife/pkg/core"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []bool{true, false}
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, cells, color.RGBA{R: 10, G: 20, B: 30, A: 255}, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	want := []byte{10, 20, 30, 255, 1, 2, 3, 255}
	if !bytes.Equal(buf, want) {
		t.Fatalf("pixels = %v, expected %v", buf, want)
	}
}

func TestCellAt(t *testing.T) {
	size := core.Size{W: 10, H: 5}
	cases := []struct {
		x, y     int
		row, col int
		ok       bool
	}{
		{0, 0, 0, 0, true},
		{199, 99, 4, 9, true},
		{25, 45, 2, 1, true},
		{200, 10, 0, 0, false},
		{-1, 10, 0, 0, false},
	}
	for _, tc := range cases {
		row, col, ok := CellAt(size, 200, 100, tc.x, tc.y)
		if ok != tc.ok || (ok && (row != tc.row || col != tc.col)) {
			t.Fatalf("CellAt(%d,%d) = (%d,%d,%v), expected (%d,%d,%v)", tc.x, tc.y, row, col, ok, tc.row, tc.col, tc.ok)
		}
	}
}

func TestPGMRoundTrip(t *testing.T) {
	g := core.NewGrid(5, 3)
	g.Set(0, 0, true)
	g.Set(2, 4, true)
	g.Set(1, 2, true)

	var buf bytes.Buffer
	if err := WritePGM(&buf, g); err != nil {
		t.Fatalf("WritePGM: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "P5\n5 3\n255\n") {
		t.Fatalf("unexpected header %q", buf.String()[:12])
	}
	if buf.Len() != len("P5\n5 3\n255\n")+15 {
		t.Fatalf("image is %d bytes", buf.Len())
	}

	got, err := ReadPGM(&buf)
	if err != nil {
		t.Fatalf("ReadPGM: %v", err)
	}
	if !got.Equal(g) {
		t.Fatal("board changed through PGM")
	}
}

func TestReadPGMWithComment(t *testing.T) {
	src := "P5\n# made by hand\n2 1\n255\n\xff\x00"
	g, err := ReadPGM(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadPGM: %v", err)
	}
	if g.W != 2 || g.H != 1 || !g.At(0, 0) || g.At(0, 1) {
		t.Fatal("unexpected board from commented header")
	}
}

func TestReadPGMRejectsBadInput(t *testing.T) {
	for name, src := range map[string]string{
		"magic":  "P2\n1 1\n255\n\x00",
		"maxval": "P5\n1 1\n15\n\x00",
		"width":  "P5\nx 1\n255\n\x00",
		"empty":  "",
	} {
		if _, err := ReadPGM(strings.NewReader(src)); !errors.Is(err, ErrNotPGM) {
			t.Fatalf("%s: expected ErrNotPGM, got %v", name, err)
		}
	}
	if _, err := ReadPGM(strings.NewReader("P5\n2 2\n255\n\x00")); err == nil {
		t.Fatal("expected an error for truncated pixels")
	}
}

package life

import (
	"fmt"
	"io"
	"os"

	"golife/pkg/codec"
	"golife/pkg/core"
)

// Empty returns a game on an all-dead board of the given size.
func Empty(size core.Size) *Game {
	return newGame(core.NewGrid(size.W, size.H))
}

// FromGrid starts a game from a copy of g.
func FromGrid(g *core.Grid) *Game {
	return newGame(g)
}

// Random returns a game on a randomly filled board. The same seed always
// yields the same board.
func Random(size core.Size, seed int64) *Game {
	g := core.NewGrid(size.W, size.H)
	core.NewRNG(seed).Fill(g)
	return newGame(g)
}

// FromStream reads a board with a rows/cols header and starts a game from it.
func FromStream(r io.Reader) (*Game, error) {
	g, err := codec.ReadStream(r)
	if err != nil {
		return nil, err
	}
	return newGame(g), nil
}

// FromFile starts a game from a pattern file.
func FromFile(path string) (*Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	game, err := FromStream(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return game, nil
}

// Package life implements Conway's Game of Life (B3/S23) on a toroidal board
// and tracks when a game ends or starts repeating itself.
package life

import (
	"errors"
	"fmt"

	"golife/pkg/core"
)

// ErrOutOfBounds reports a cell coordinate outside the board.
var ErrOutOfBounds = errors.New("cell out of bounds")

// Game is a single board together with its generation counter, the
// configuration it started from and its end-state classification.
//
// A Game is not safe for concurrent use.
type Game struct {
	initial *core.Grid
	cur     *core.Grid
	prev    *core.Grid

	age     int
	history *History

	finish Finish
	cycle  Cycle
}

func newGame(initial *core.Grid) *Game {
	return &Game{
		initial: initial.Clone(),
		cur:     initial.Clone(),
		prev:    initial.Clone(),
		age:     1,
		history: NewHistory(HistoryDepth),
	}
}

// Width returns the number of columns.
func (g *Game) Width() int { return g.cur.W }

// Height returns the number of rows.
func (g *Game) Height() int { return g.cur.H }

// Size returns the board dimensions.
func (g *Game) Size() core.Size { return g.cur.Size() }

// Age returns the current generation, starting at 1.
func (g *Game) Age() int { return g.age }

// Current exposes the live board. Callers must not resize it.
func (g *Game) Current() *core.Grid { return g.cur }

// Initial exposes the configuration the game started from.
func (g *Game) Initial() *core.Grid { return g.initial }

// Previous exposes the board before the most recent step.
func (g *Game) Previous() *core.Grid { return g.prev }

// Finished reports whether the game has died out or settled.
func (g *Game) Finished() bool { return g.finish.Done() }

// FinishReason describes why the game finished, or "" while it runs.
func (g *Game) FinishReason() string { return g.finish.Reason() }

// Finish returns the finish classification.
func (g *Game) Finish() Finish { return g.finish }

// Periodic reports whether a repeating configuration has been seen.
func (g *Game) Periodic() bool { return g.cycle.Detected() }

// PeriodicInfo names the two generations that matched, or "".
func (g *Game) PeriodicInfo() string { return g.cycle.Info() }

// Cycle returns the periodicity classification.
func (g *Game) Cycle() Cycle { return g.cycle }

// Clear kills every cell and restarts the game at generation 1. The board
// keeps its dimensions.
func (g *Game) Clear() {
	g.initial.Clear()
	g.prev.Clear()
	g.cur.Clear()
	g.history.Clear()
	g.age = 1
	g.finish = Finish{}
	g.cycle = Cycle{}
}

// Toggle flips the cell at (row, col). Before the first step the initial
// configuration follows the edit.
func (g *Game) Toggle(row, col int) error {
	if !g.cur.InBounds(row, col) {
		return fmt.Errorf("toggle (%d,%d) on %s board: %w", row, col, g.Size(), ErrOutOfBounds)
	}
	alive := !g.cur.At(row, col)
	g.cur.Set(row, col, alive)
	if g.age == 1 {
		g.initial.Set(row, col, alive)
	}
	return nil
}

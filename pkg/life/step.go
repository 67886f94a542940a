package life

import "golife/pkg/core"

// Step advances the game by one generation and returns the new board. It
// returns false, and does nothing, once the game has finished.
//
// The returned grid is the game's live board, not a copy.
func (g *Game) Step() (*core.Grid, bool) {
	if g.finish.Done() {
		return nil, false
	}

	g.prev, g.cur = g.cur, g.prev
	g.history.PushFront(g.prev.Clone())

	advance(g.prev, g.cur)
	g.age++

	// Once periodic the game only loops through boards already classified.
	if !g.cycle.Detected() {
		g.finish = g.classifyFinish()
		g.cycle = g.classifyCycle()
	}
	return g.cur, true
}

// advance writes the generation after src into dst using wrap-around
// neighbours. Only src is read.
func advance(src, dst *core.Grid) {
	w, h := src.W, src.H
	cur := src.Cells()
	nxt := dst.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					if cur[ny*w+nx] {
						neighbors++
					}
				}
			}
			idx := y*w + x
			alive := cur[idx]
			nxt[idx] = (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
		}
	}
}

func (g *Game) classifyFinish() Finish {
	if g.cur.Alive() == 0 {
		return Finish{Cause: AllDead, Generation: g.age}
	}
	if g.cur.Equal(g.prev) {
		return Finish{Cause: Stable, Generation: g.age}
	}
	return Finish{}
}

// classifyCycle compares the board with older boards in the history. The
// newest entry is skipped: matching it is the stable case.
func (g *Game) classifyCycle() Cycle {
	var c Cycle
	g.history.Each(func(i int, past *core.Grid) bool {
		if i == 0 {
			return true
		}
		if g.cur.Equal(past) {
			c = Cycle{From: g.age - i - 1, To: g.age}
			return false
		}
		return true
	})
	return c
}

package life

import (
	"errors"
	"testing"

	"golife/pkg/core"
)

func TestEmptyGame(t *testing.T) {
	game := Empty(core.Size{W: 7, H: 4})
	if game.Width() != 7 || game.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 7x4", game.Width(), game.Height())
	}
	if game.Age() != 1 || game.Finished() || game.Periodic() {
		t.Fatal("new game must start at generation 1 with no end state")
	}
	if game.Current().Alive() != 0 || game.Initial().Alive() != 0 {
		t.Fatal("empty game has live cells")
	}
}

func TestFromGridCopiesInput(t *testing.T) {
	g := core.NewGrid(3, 3)
	g.Set(1, 1, true)
	game := FromGrid(g)
	g.Set(0, 0, true)

	for name, b := range map[string]*core.Grid{"initial": game.Initial(), "current": game.Current(), "previous": game.Previous()} {
		if b.At(0, 0) || !b.At(1, 1) {
			t.Fatalf("%s board is not an independent copy of the input", name)
		}
	}
	game.Current().Set(2, 2, true)
	if game.Initial().At(2, 2) || game.Previous().At(2, 2) {
		t.Fatal("boards of a new game alias each other")
	}
}

func TestToggleBeforeFirstStepEditsInitial(t *testing.T) {
	game := Empty(core.Size{W: 4, H: 4})
	if err := game.Toggle(1, 2); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !game.Current().At(1, 2) || !game.Initial().At(1, 2) {
		t.Fatal("toggle at generation 1 must edit current and initial boards")
	}
	if err := game.Toggle(1, 2); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if game.Current().At(1, 2) || game.Initial().At(1, 2) {
		t.Fatal("second toggle must revert both boards")
	}
}

func TestToggleAfterStepLeavesInitial(t *testing.T) {
	game := board(5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	game.Step()
	before := game.Initial().Clone()

	if err := game.Toggle(0, 0); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !game.Current().At(0, 0) {
		t.Fatal("toggle after a step must edit the current board")
	}
	if !game.Initial().Equal(before) {
		t.Fatal("toggle after a step edited the initial board")
	}
}

func TestToggleOutOfBounds(t *testing.T) {
	game := Empty(core.Size{W: 3, H: 2})
	for _, c := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		err := game.Toggle(c[0], c[1])
		if !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Toggle(%d,%d) error = %v, expected ErrOutOfBounds", c[0], c[1], err)
		}
	}
	if game.Current().Alive() != 0 || game.Initial().Alive() != 0 {
		t.Fatal("failed toggle mutated the board")
	}
}

func TestClearResetsEverything(t *testing.T) {
	game := board(5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	game.Step()
	game.Step()
	game.Toggle(0, 0)
	game.Toggle(0, 1)
	game.Toggle(4, 4)
	game.Step()
	if !game.Periodic() {
		t.Fatal("setup: blinker should be periodic before Clear")
	}

	game.Clear()
	if game.Age() != 1 {
		t.Fatalf("age = %d after Clear, expected 1", game.Age())
	}
	if game.Finished() || game.Periodic() || game.FinishReason() != "" || game.PeriodicInfo() != "" {
		t.Fatal("Clear left end-state flags behind")
	}
	for name, b := range map[string]*core.Grid{"initial": game.Initial(), "current": game.Current(), "previous": game.Previous()} {
		if b.Alive() != 0 {
			t.Fatalf("%s board has live cells after Clear", name)
		}
	}
	if game.history.Len() != 0 {
		t.Fatalf("history holds %d boards after Clear", game.history.Len())
	}
	if game.Width() != 5 || game.Height() != 5 {
		t.Fatal("Clear changed the board size")
	}

	// The cleared game behaves like a new one.
	game.Toggle(2, 2)
	if !game.Initial().At(2, 2) {
		t.Fatal("toggle after Clear must edit the initial board again")
	}
	game.Step()
	if !game.Finished() || game.FinishReason() != "all cells dead at generation 2" {
		t.Fatalf("unexpected finish after Clear: %q", game.FinishReason())
	}
}

func TestRandomDeterministic(t *testing.T) {
	a := Random(core.Size{W: 20, H: 10}, 5)
	b := Random(core.Size{W: 20, H: 10}, 5)
	if !a.Current().Equal(b.Current()) {
		t.Fatal("same seed produced different games")
	}
	if !a.Initial().Equal(a.Current()) {
		t.Fatal("random game must record its starting board")
	}
}

package life

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golife/pkg/codec"
	"golife/pkg/core"
)

func TestNewRecord(t *testing.T) {
	game := board(6, 4, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	game.Step()

	rec := NewRecord("  blinker  ", game)
	if rec.Name != "blinker" {
		t.Fatalf("Name = %q", rec.Name)
	}
	if rec.Age != 2 {
		t.Fatalf("Age = %d, expected 2", rec.Age)
	}
	if rec.Size != "(6, 4)" {
		t.Fatalf("Size = %q, expected (6, 4)", rec.Size)
	}
	if rec.Initial != "\n..x\n..x\n..x\n" {
		t.Fatalf("Initial = %q", rec.Initial)
	}
	if rec.Current != "\n\n.xxx\n\n" {
		t.Fatalf("Current = %q", rec.Current)
	}

	if got := NewRecord("   ", game).Name; got != UntitledName {
		t.Fatalf("blank name saved as %q, expected %q", got, UntitledName)
	}
}

func TestFromRecordRestoresBoards(t *testing.T) {
	game := board(6, 4, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	game.Step()
	rec := NewRecord("blinker", game)

	restored, err := FromRecord(rec, core.Size{W: 30, H: 30})
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	if restored.Size() != (core.Size{W: 6, H: 4}) {
		t.Fatalf("restored size %s, expected 6x4", restored.Size())
	}
	if restored.Age() != 2 {
		t.Fatalf("restored age %d, expected 2", restored.Age())
	}
	if !restored.Current().Equal(game.Current()) || !restored.Initial().Equal(game.Initial()) {
		t.Fatal("restored boards differ from the saved game")
	}
	if !restored.Previous().Equal(restored.Initial()) {
		t.Fatal("previous board must start as a copy of the initial board")
	}
	if restored.Previous() == restored.Initial() {
		t.Fatal("previous board aliases the initial board")
	}
	if restored.Finished() || restored.Periodic() || restored.history.Len() != 0 {
		t.Fatal("restored game must start without history or end states")
	}

	// Tracking restarts from the restored generation.
	restored.Step()
	restored.Step()
	if c := restored.Cycle(); c.From != 2 || c.To != 4 {
		t.Fatalf("cycle after restore = %+v, expected generations 2 and 4", c)
	}
}

func TestFromRecordFallsBackToGivenSize(t *testing.T) {
	rec := Record{Age: 3, Initial: "x\n", Current: ".x\n"}
	game, err := FromRecord(rec, core.Size{W: 8, H: 5})
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	if game.Size() != (core.Size{W: 8, H: 5}) {
		t.Fatalf("size %s, expected fallback 8x5", game.Size())
	}
	if game.Age() != 3 || !game.Current().At(0, 1) || !game.Initial().At(0, 0) {
		t.Fatal("record content not restored")
	}
}

func TestFromRecordUsesLargestExtent(t *testing.T) {
	rec := Record{Age: 1, Initial: "x\nx\nx\nx\n", Current: "....x\n", Size: "(2, 2)"}
	game, err := FromRecord(rec, core.Size{})
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	for name, b := range map[string]*core.Grid{"initial": game.Initial(), "current": game.Current(), "previous": game.Previous()} {
		if b.W != 5 || b.H != 4 {
			t.Fatalf("%s board is %dx%d, expected 5x4", name, b.W, b.H)
		}
	}
}

func TestFromRecordRejectsInvalidInput(t *testing.T) {
	cases := map[string]Record{
		"zero age":  {Age: 0, Initial: "x\n", Current: "x\n"},
		"bad size":  {Age: 1, Initial: "x\n", Current: "x\n", Size: "(a, b)"},
		"one value": {Age: 1, Initial: "x\n", Current: "x\n", Size: "(4)"},
		"negative":  {Age: 1, Initial: "x\n", Current: "x\n", Size: "(-1, 3)"},
	}
	for name, rec := range cases {
		if _, err := FromRecord(rec, core.Size{W: 3, H: 3}); !errors.Is(err, ErrInvalidRecord) {
			t.Fatalf("%s: expected ErrInvalidRecord, got %v", name, err)
		}
	}
}

func TestParseSize(t *testing.T) {
	for _, s := range []string{"(30, 20)", "30,20", " ( 30 ,20 ) "} {
		got, err := ParseSize(s)
		if err != nil {
			t.Fatalf("ParseSize(%q): %v", s, err)
		}
		if got != (core.Size{W: 30, H: 20}) {
			t.Fatalf("ParseSize(%q) = %v", s, got)
		}
	}
	if FormatSize(core.Size{W: 3, H: 9}) != "(3, 9)" {
		t.Fatal("FormatSize mismatch")
	}
}

func TestFromStreamAndFile(t *testing.T) {
	src := "rows = 6\ncols = 6\n\n.x\n..x\nxxx\n"
	game, err := FromStream(strings.NewReader(src))
	if err != nil {
		t.Fatalf("FromStream: %v", err)
	}
	if game.Size() != (core.Size{W: 6, H: 6}) || game.Current().Alive() != 5 {
		t.Fatalf("unexpected board:\n%s", codec.Encode(game.Current()))
	}

	path := filepath.Join(t.TempDir(), "glider.txt")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	fromFile, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if !fromFile.Current().Equal(game.Current()) {
		t.Fatal("file and stream produced different boards")
	}

	bad := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(bad, []byte("rows = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := FromFile(bad); !errors.Is(err, codec.ErrMalformedHeader) {
		t.Fatalf("expected ErrMalformedHeader, got %v", err)
	}
}

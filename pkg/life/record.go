package life

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golife/pkg/codec"
	"golife/pkg/core"
)

// ErrInvalidRecord reports a saved game that cannot be restored.
var ErrInvalidRecord = errors.New("invalid game record")

// UntitledName replaces a blank record name.
const UntitledName = "untitled"

// Record is the persisted form of a game.
type Record struct {
	Name    string `json:"name" yaml:"name"`
	Age     int    `json:"age" yaml:"age"`
	Initial string `json:"initial" yaml:"initial"`
	Current string `json:"current" yaml:"current"`
	// Size is the board size written as "(width, height)".
	Size string `json:"size" yaml:"size"`
}

// NewRecord captures the game under the given name.
func NewRecord(name string, g *Game) Record {
	name = strings.TrimSpace(name)
	if name == "" {
		name = UntitledName
	}
	return Record{
		Name:    name,
		Age:     g.age,
		Initial: codec.Encode(g.initial),
		Current: codec.Encode(g.cur),
		Size:    FormatSize(g.Size()),
	}
}

// FromRecord restores a game from a record. A blank size falls back to the
// given one. The restored game starts tracking afresh at the recorded
// generation: history and end states are not persisted.
func FromRecord(rec Record, fallback core.Size) (*Game, error) {
	if rec.Age < 1 {
		return nil, fmt.Errorf("%w: generation %d", ErrInvalidRecord, rec.Age)
	}
	size := fallback
	if strings.TrimSpace(rec.Size) != "" {
		parsed, err := ParseSize(rec.Size)
		if err != nil {
			return nil, err
		}
		size = parsed
	}

	// Both boards are decoded to the same dimensions.
	rows, cols := codec.Extent(rec.Initial)
	r, c := codec.Extent(rec.Current)
	rows = max(size.H, rows, r)
	cols = max(size.W, cols, c)

	g := &Game{
		initial: codec.Decode(rec.Initial, rows, cols),
		cur:     codec.Decode(rec.Current, rows, cols),
		age:     rec.Age,
		history: NewHistory(HistoryDepth),
	}
	g.prev = g.initial.Clone()
	return g, nil
}

// FormatSize writes a size as "(width, height)".
func FormatSize(s core.Size) string {
	return fmt.Sprintf("(%d, %d)", s.W, s.H)
}

// ParseSize reads a size written by FormatSize.
func ParseSize(s string) (core.Size, error) {
	inner := strings.TrimSpace(s)
	inner = strings.TrimPrefix(inner, "(")
	inner = strings.TrimSuffix(inner, ")")
	parts := strings.Split(inner, ",")
	if len(parts) != 2 {
		return core.Size{}, fmt.Errorf("%w: size %q", ErrInvalidRecord, s)
	}
	w, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
	h, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return core.Size{}, fmt.Errorf("%w: size %q", ErrInvalidRecord, s)
	}
	return core.Size{W: w, H: h}, nil
}

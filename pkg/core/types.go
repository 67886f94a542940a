package core

import "fmt"

// Size describes the dimensions of a board in cells.
type Size struct {
	W int
	H int
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool { return s.W > 0 && s.H > 0 }

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

package life

import "fmt"

// FinishCause enumerates the ways a game can end.
type FinishCause uint8

const (
	// Running means the game has not finished.
	Running FinishCause = iota
	// AllDead means no live cell is left.
	AllDead
	// Stable means a step left the board unchanged.
	Stable
)

func (c FinishCause) String() string {
	switch c {
	case AllDead:
		return "all-dead"
	case Stable:
		return "stable"
	default:
		return "running"
	}
}

// Finish records whether and when a game ended.
type Finish struct {
	Cause      FinishCause
	Generation int
}

// Done reports whether the game has finished.
func (f Finish) Done() bool { return f.Cause != Running }

// Reason is a human-readable description of the finish, "" while running.
func (f Finish) Reason() string {
	switch f.Cause {
	case AllDead:
		return fmt.Sprintf("all cells dead at generation %d", f.Generation)
	case Stable:
		return fmt.Sprintf("stable configuration at generation %d", f.Generation)
	default:
		return ""
	}
}

// Cycle records the first repetition seen: the board at generation To equals
// the one at generation From. The zero value means no repetition.
type Cycle struct {
	From, To int
}

// Detected reports whether a repetition was found.
func (c Cycle) Detected() bool { return c.To != 0 }

// Period is the number of generations between the two matching boards.
func (c Cycle) Period() int { return c.To - c.From }

// Info is a human-readable description of the repetition, "" if none.
func (c Cycle) Info() string {
	if !c.Detected() {
		return ""
	}
	return fmt.Sprintf("periodic configuration: generations %d and %d", c.From, c.To)
}

package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golife/pkg/core"
)

// ErrMalformedHeader reports a stream whose rows/cols directives are missing
// or unreadable.
var ErrMalformedHeader = errors.New("malformed board header")

// ReadHeader consumes the "rows = N" and "cols = N" directives that precede a
// board body. Blank lines and '#' comments are skipped and other lines are
// ignored. One blank separator line after the directives is consumed.
func ReadHeader(r *bufio.Reader) (rows, cols int, err error) {
	for rows == 0 || cols == 0 {
		line, readErr := r.ReadString('\n')
		if line == "" && readErr != nil {
			if readErr == io.EOF {
				return 0, 0, fmt.Errorf("%w: missing %s directive", ErrMalformedHeader, missing(rows, cols))
			}
			return 0, 0, readErr
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		switch {
		case strings.HasPrefix(line, "rows ="):
			if rows, err = directive(line); err != nil {
				return 0, 0, err
			}
		case strings.HasPrefix(line, "cols ="):
			if cols, err = directive(line); err != nil {
				return 0, 0, err
			}
		}
	}

	next, err := r.Peek(1)
	if err == nil && (next[0] == '\n' || next[0] == '\r') {
		if _, err := r.ReadString('\n'); err != nil && err != io.EOF {
			return 0, 0, err
		}
	}
	return rows, cols, nil
}

func directive(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, fmt.Errorf("%w: %q has no value", ErrMalformedHeader, strings.TrimSpace(line))
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q is not a positive integer", ErrMalformedHeader, fields[2])
	}
	return n, nil
}

func missing(rows, cols int) string {
	switch {
	case rows == 0 && cols == 0:
		return "rows and cols"
	case rows == 0:
		return "rows"
	default:
		return "cols"
	}
}

// ReadStream parses a header followed by a board body and returns the board.
func ReadStream(r io.Reader) (*core.Grid, error) {
	br := bufio.NewReader(r)
	rows, cols, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(br)
	if err != nil {
		return nil, fmt.Errorf("read board body: %w", err)
	}
	return Decode(string(body), rows, cols), nil
}

// WriteStream writes the board with its rows/cols header in the form
// ReadStream accepts.
func WriteStream(w io.Writer, g *core.Grid) error {
	if _, err := fmt.Fprintf(w, "rows = %d\ncols = %d\n\n", g.H, g.W); err != nil {
		return err
	}
	_, err := io.WriteString(w, Encode(g))
	return err
}

package script

import (
	"fmt"
	"iter"
	"unicode/utf8"
)

// Script is an ordered sequence of lines. The zero value is an empty script.
// A Script never changes after construction.
type Script struct {
	lines []Line
}

// New creates a Script from the given lines, in playback order.
func New(lines ...Line) (Script, error) {
	copied := make([]Line, 0, len(lines))
	for i, l := range lines {
		switch v := l.(type) {
		case Command:
			if !utf8.ValidString(v.Text) {
				return Script{}, fmt.Errorf("%w: line %d", ErrInvalidUTF8, i)
			}
		case Output:
			if !utf8.ValidString(v.Text) {
				return Script{}, fmt.Errorf("%w: line %d", ErrInvalidUTF8, i)
			}
		case nil:
			return Script{}, fmt.Errorf("%w: line %d", ErrNilLine, i)
		default:
			return Script{}, fmt.Errorf("%w: line %d is %T", ErrUnknownLine, i, l)
		}
		copied = append(copied, l)
	}
	return Script{lines: copied}, nil
}

// Must is like New but panics on error. Intended for scripts defined in code.
func Must(lines ...Line) Script {
	s, err := New(lines...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of lines.
func (s Script) Len() int {
	return len(s.lines)
}

// At returns the line at index i.
func (s Script) At(i int) Line {
	return s.lines[i]
}

// Lines returns a copy of the script's lines.
func (s Script) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// All iterates over the lines with their index, in playback order.
func (s Script) All() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		for i, l := range s.lines {
			if !yield(i, l) {
				return
			}
		}
	}
}

// Commands returns the number of command lines.
func (s Script) Commands() int {
	n := 0
	for _, l := range s.lines {
		if _, ok := l.(Command); ok {
			n++
		}
	}
	return n
}

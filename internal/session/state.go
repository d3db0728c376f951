package session

import (
	"errors"

	"github.com/dyne/capspad/internal/transform"
)

var ErrEmptyInput = errors.New("empty input")

type State int

const (
	Reading State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Reading:
		return "reading"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

type Kind int

const (
	KindNone Kind = iota
	KindQuit
	KindEmpty
	KindTransformed
	KindFailed
)

type Result struct {
	Original    string
	Transformed string
	Stats       transform.Stats
}

type Outcome struct {
	Kind   Kind
	Result Result
	Err    error
}

var quitWords = map[string]struct{}{
	"quit": {},
	"QUIT": {},
	"Quit": {},
}

// IsQuit matches only the three exact spellings; "qUIT" or "quit " are text.
func IsQuit(line string) bool {
	_, ok := quitWords[line]
	return ok
}

// Step advances the loop by one line. It performs no I/O.
func Step(s State, line string, tr transform.Transformer) (State, Outcome) {
	if s == Terminated {
		return Terminated, Outcome{Kind: KindNone}
	}
	if IsQuit(line) {
		return Terminated, Outcome{Kind: KindQuit}
	}
	if line == "" {
		return Reading, Outcome{Kind: KindEmpty, Err: ErrEmptyInput}
	}
	out, err := tr.Transform(line)
	if err != nil {
		return Reading, Outcome{Kind: KindFailed, Err: err}
	}
	return Reading, Outcome{
		Kind: KindTransformed,
		Result: Result{
			Original:    line,
			Transformed: out,
			Stats:       transform.Measure(line, out),
		},
	}
}

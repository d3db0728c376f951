package session

import (
	"errors"
	"testing"

	"github.com/dyne/capspad/internal/transform"
)

func TestIsQuit(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"quit", true},
		{"QUIT", true},
		{"Quit", true},
		{"Quit ", false},
		{" quit", false},
		{"QUIt", false},
		{"qUIT", false},
		{"quit\r", false},
		{"exit", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsQuit(tc.line); got != tc.want {
			t.Errorf("IsQuit(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestStepTransitions(t *testing.T) {
	tr := transform.NewCasePad(transform.ASCII{})
	cases := []struct {
		name      string
		from      State
		line      string
		wantState State
		wantKind  Kind
	}{
		{"quit lower", Reading, "quit", Terminated, KindQuit},
		{"quit upper", Reading, "QUIT", Terminated, KindQuit},
		{"quit title", Reading, "Quit", Terminated, KindQuit},
		{"trailing space is text", Reading, "Quit ", Reading, KindTransformed},
		{"odd casing is text", Reading, "QUIt", Reading, KindTransformed},
		{"inverted casing is text", Reading, "qUIT", Reading, KindTransformed},
		{"empty", Reading, "", Reading, KindEmpty},
		{"whitespace only", Reading, "   ", Reading, KindTransformed},
		{"text", Reading, "hi there", Reading, KindTransformed},
		{"terminated ignores quit", Terminated, "quit", Terminated, KindNone},
		{"terminated ignores text", Terminated, "hello", Terminated, KindNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state, out := Step(tc.from, tc.line, tr)
			if state != tc.wantState || out.Kind != tc.wantKind {
				t.Fatalf("Step(%v, %q) = (%v, %v), want (%v, %v)", tc.from, tc.line, state, out.Kind, tc.wantState, tc.wantKind)
			}
		})
	}
}

func TestStepEmptyReportsError(t *testing.T) {
	_, out := Step(Reading, "", transform.NewCasePad(nil))
	if !errors.Is(out.Err, ErrEmptyInput) {
		t.Fatalf("err = %v", out.Err)
	}
	if out.Result != (Result{}) {
		t.Fatalf("empty line produced a result: %+v", out.Result)
	}
}

func TestStepQuitTextIsTransformed(t *testing.T) {
	_, out := Step(Reading, "Quit ", transform.NewCasePad(transform.ASCII{}))
	if out.Result.Transformed != "Q  U  I  T       " {
		t.Fatalf("got %q", out.Result.Transformed)
	}
	if out.Result.Stats.TransformedLen != 17 || out.Result.Stats.Increase != 12 {
		t.Fatalf("stats = %+v", out.Result.Stats)
	}
}

type brokenTransformer struct{}

func (brokenTransformer) Name() string                     { return "Broken" }
func (brokenTransformer) Transform(string) (string, error) { return "", errors.New("broken") }

func TestStepTransformerFailureKeepsReading(t *testing.T) {
	state, out := Step(Reading, "x", brokenTransformer{})
	if state != Reading || out.Kind != KindFailed || out.Err == nil {
		t.Fatalf("got (%v, %+v)", state, out)
	}
}

package transform

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

type Transformer interface {
	Name() string
	Transform(input string) (string, error)
}

const (
	DefaultSpaceWidth = 5
	DefaultCharPad    = 2
	MaxWidth          = 64
)

// CasePad replaces each space with SpaceWidth spaces and every other
// character with its upper case form followed by CharPad spaces.
type CasePad struct {
	mapper     CaseMapper
	spaceWidth int
	charPad    int
}

func NewCasePad(mapper CaseMapper) *CasePad {
	return NewCasePadWidths(mapper, DefaultSpaceWidth, DefaultCharPad)
}

func NewCasePadWidths(mapper CaseMapper, spaceWidth, charPad int) *CasePad {
	if mapper == nil {
		mapper = ASCII{}
	}
	if spaceWidth < 0 {
		spaceWidth = DefaultSpaceWidth
	}
	if charPad < 0 {
		charPad = DefaultCharPad
	}
	spaceWidth = min(spaceWidth, MaxWidth)
	charPad = min(charPad, MaxWidth)
	return &CasePad{mapper: mapper, spaceWidth: spaceWidth, charPad: charPad}
}

func (t *CasePad) Name() string { return "CasePad" }

func (t *CasePad) SpaceWidth() int { return t.spaceWidth }

func (t *CasePad) CharPad() int { return t.charPad }

func (t *CasePad) Transform(input string) (string, error) {
	return t.Apply(input), nil
}

// Apply is Transform without the error result; CasePad cannot fail.
func (t *CasePad) Apply(input string) string {
	if input == "" {
		return ""
	}
	space := strings.Repeat(" ", t.spaceWidth)
	pad := strings.Repeat(" ", t.charPad)
	var b strings.Builder
	b.Grow(len(input) * (t.charPad + 1))
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		switch {
		case r == ' ':
			b.WriteString(space)
		case r == utf8.RuneError && size == 1:
			// Bytes that are not UTF-8 pass through untouched.
			b.WriteByte(input[i])
			b.WriteString(pad)
		default:
			b.WriteString(t.mapper.Upper(r))
			b.WriteString(pad)
		}
		i += size
	}
	return b.String()
}

type RegexReplace struct {
	re   *regexp.Regexp
	repl string
}

func NewRegexReplace(pattern, repl string) (*RegexReplace, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	return &RegexReplace{re: re, repl: repl}, nil
}

func (t *RegexReplace) Name() string { return "RegexReplace" }

func (t *RegexReplace) Transform(input string) (string, error) {
	return t.re.ReplaceAllString(input, t.repl), nil
}

// MapReplace swaps a whole line for its mapped value and passes other lines through.
type MapReplace struct{ m map[string]string }

func NewMapReplace(m map[string]string) *MapReplace { return &MapReplace{m: m} }

func (t *MapReplace) Name() string { return "MapReplace" }

func (t *MapReplace) Transform(input string) (string, error) {
	if v, ok := t.m[input]; ok {
		return v, nil
	}
	return input, nil
}

type Chain struct {
	stages []Transformer
}

func NewChain(stages ...Transformer) *Chain {
	return &Chain{stages: stages}
}

func (c *Chain) Name() string {
	names := make([]string, len(c.stages))
	for i, s := range c.stages {
		names[i] = s.Name()
	}
	return strings.Join(names, " > ")
}

func (c *Chain) Stages() []Transformer {
	return c.stages
}

func (c *Chain) Transform(input string) (string, error) {
	out := input
	for _, s := range c.stages {
		next, err := s.Transform(out)
		if err != nil {
			return "", fmt.Errorf("%s: %w", s.Name(), err)
		}
		out = next
	}
	return out, nil
}

package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dyne/capspad/internal/log"
	"github.com/dyne/capspad/internal/transform"
)

type Options struct {
	In          LineReader
	Out         io.Writer
	Transformer transform.Transformer
	Theme       Theme
	Banner      bool
	Logger      *log.Logger
}

// Run drives the read/step/print loop until a quit word, the end of input or
// cancellation of ctx. End of input counts as a quit.
func Run(ctx context.Context, opts Options) error {
	if opts.In == nil {
		return fmt.Errorf("session: no input reader")
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	tr := opts.Transformer
	if tr == nil {
		tr = transform.NewCasePad(transform.ASCII{})
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	r := NewRenderer(opts.Out, opts.Theme)

	if opts.Banner {
		r.Banner(tr)
	}
	logger.Debugf("session started with %s", tr.Name())

	state := Reading
	lines := 0
	for state == Reading {
		if err := ctx.Err(); err != nil {
			logger.Debugf("session cancelled after %d lines: %v", lines, err)
			return r.Err()
		}
		line, err := opts.In.ReadLine(Prompt)
		if errors.Is(err, io.EOF) {
			logger.Debugf("input exhausted after %d lines", lines)
			r.println("")
			r.Goodbye()
			return r.Err()
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		lines++

		var out Outcome
		state, out = Step(state, line, tr)
		switch out.Kind {
		case KindEmpty:
			logger.Debugf("line %d: %v", lines, out.Err)
		case KindFailed:
			logger.Errorf("line %d: transform failed: %v", lines, out.Err)
		case KindTransformed:
			logger.Debugf("line %d: %d -> %d characters", lines, out.Result.Stats.OriginalLen, out.Result.Stats.TransformedLen)
		case KindQuit:
			logger.Debugf("quit after %d lines", lines)
		}
		r.Outcome(out)
		if err := r.Err(); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

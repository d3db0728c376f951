package plan

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dyne/capspad/internal/config"
	"github.com/dyne/capspad/internal/log"
	"github.com/dyne/capspad/internal/transform"
)

// Run writes each configured stage with the value it produces for text.
func Run(ctx context.Context, w io.Writer, text string, cfg *config.Config, logger *log.Logger) error {
	if cfg == nil {
		cfg = config.Default()
	}
	tr, err := transform.BuildPipeline(cfg)
	if err != nil {
		return err
	}
	stages := []transform.Transformer{tr}
	if chain, ok := tr.(*transform.Chain); ok {
		stages = chain.Stages()
	}

	var b strings.Builder
	b.WriteString("Plan:\n")
	fmt.Fprintf(&b, "- case: %s\n", caseLabel(cfg))
	fmt.Fprintf(&b, "- input: %q (%d characters)\n", text, utf8.RuneCountInString(text))
	cur := text
	for i, s := range stages {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := s.Transform(cur)
		if err != nil {
			return fmt.Errorf("stage %d %s: %w", i+1, s.Name(), err)
		}
		fmt.Fprintf(&b, "  %d. %s -> %q\n", i+1, s.Name(), next)
		if logger != nil {
			logger.Debugf("stage %d %s: %q -> %q", i+1, s.Name(), cur, next)
		}
		cur = next
	}
	st := transform.Measure(text, cur)
	fmt.Fprintf(&b, "Result: %d characters (%+d)\n", st.TransformedLen, st.Increase)
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write plan: %w", err)
	}
	if logger != nil {
		logger.Infof("plan complete")
	}
	return nil
}

func caseLabel(cfg *config.Config) string {
	name := strings.ToLower(cfg.Case)
	switch {
	case name == "":
		return config.CaseASCII
	case strings.EqualFold(name, config.CaseLocale):
		return fmt.Sprintf("%s (%s)", name, cfg.Locale)
	default:
		return name
	}
}

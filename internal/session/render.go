package session

import (
	"fmt"
	"io"

	"github.com/dyne/capspad/internal/transform"
)

const (
	Prompt     = "Enter your text (or 'quit' to exit): "
	bannerRule = "====================================="
	blockRule  = "----------------------------------------"
	sampleText = "hi there"
)

// Renderer formats session output. The first write error sticks and is
// reported by Err.
type Renderer struct {
	w     io.Writer
	theme Theme
	err   error
}

func NewRenderer(w io.Writer, theme Theme) *Renderer {
	return &Renderer{w: w, theme: theme.withDefaults()}
}

func (r *Renderer) Err() error { return r.err }

func (r *Renderer) println(s string) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintln(r.w, s)
}

func (r *Renderer) printf(format string, args ...any) {
	r.println(fmt.Sprintf(format, args...))
}

func (r *Renderer) Banner(tr transform.Transformer) {
	r.println(r.theme.Rule(bannerRule))
	r.println(r.theme.Title("   Text Transformer & Capitalizer"))
	r.println(r.theme.Rule(bannerRule))
	r.println("")
	r.println("This program will:")
	if cp, ok := tr.(*transform.CasePad); ok {
		r.println("• Convert all letters to UPPERCASE")
		r.printf("• Add %d spaces after each character", cp.CharPad())
		r.printf("• Add %d extra spaces to existing spaces (%d total)", cp.SpaceWidth()-1, cp.SpaceWidth())
	} else {
		r.printf("• Apply the %s pipeline to each line", tr.Name())
	}
	r.println("")
	if sample, err := tr.Transform(sampleText); err == nil {
		r.printf("Example: '%s' -> '%s'", sampleText, sample)
		r.println("")
	}
}

func (r *Renderer) Outcome(o Outcome) {
	switch o.Kind {
	case KindQuit:
		r.Goodbye()
	case KindEmpty:
		r.println(r.theme.Error("❌ Error: Please enter some text!"))
		r.println("")
	case KindFailed:
		r.println(r.theme.Error("❌ Error: " + o.Err.Error()))
		r.println("")
	case KindTransformed:
		r.result(o.Result)
	}
}

func (r *Renderer) result(res Result) {
	r.println("")
	r.println(r.theme.Heading("📝 Original Text:"))
	r.println(quote(res.Original))
	r.println("")
	r.println(r.theme.Heading("✨ Transformed Text:"))
	r.println(quote(res.Transformed))
	r.println("")
	r.println(r.theme.Heading("📊 Statistics:"))
	r.printf("• Original length: %d characters", res.Stats.OriginalLen)
	r.printf("• Transformed length: %d characters", res.Stats.TransformedLen)
	r.printf("• Length increase: %d characters", res.Stats.Increase)
	r.println("")
	r.println(r.theme.Rule(blockRule))
	r.println("")
}

func (r *Renderer) Goodbye() {
	r.println("")
	r.println("Thank you for using Text Transformer!")
	r.println("Goodbye! 👋")
}

func quote(s string) string {
	return `"` + s + `"`
}

package session

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title   func(string) string
	Heading func(string) string
	Error   func(string) string
	Rule    func(string) string
}

func identity(s string) string { return s }

func PlainTheme() Theme {
	return Theme{Title: identity, Heading: identity, Error: identity, Rule: identity}
}

func ColorTheme() Theme {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	heading := lipgloss.NewStyle().Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	rule := lipgloss.NewStyle().Faint(true)
	return Theme{
		Title:   render(title),
		Heading: render(heading),
		Error:   render(errStyle),
		Rule:    render(rule),
	}
}

func render(st lipgloss.Style) func(string) string {
	return func(s string) string { return st.Render(s) }
}

func (t Theme) withDefaults() Theme {
	if t.Title == nil {
		t.Title = identity
	}
	if t.Heading == nil {
		t.Heading = identity
	}
	if t.Error == nil {
		t.Error = identity
	}
	if t.Rule == nil {
		t.Rule = identity
	}
	return t
}

package transform

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dyne/capspad/internal/config"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseMapper returns the upper case form of a single character. The result
// may hold more than one rune for locale mappings such as German sharp s.
type CaseMapper interface {
	Upper(r rune) string
}

// ASCII maps only a-z and leaves every other rune untouched.
type ASCII struct{}

func (ASCII) Upper(r rune) string {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return string(r)
}

// Unicode applies the simple one-to-one Unicode upper case mapping.
type Unicode struct{}

func (Unicode) Upper(r rune) string {
	return string(unicode.ToUpper(r))
}

// Locale applies the full upper case mapping of a language.
type Locale struct {
	caser cases.Caser
}

func NewLocale(tag string) (*Locale, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", tag, err)
	}
	return &Locale{caser: cases.Upper(t)}, nil
}

func (l *Locale) Upper(r rune) string {
	return l.caser.String(string(r))
}

func MapperFor(name, locale string) (CaseMapper, error) {
	switch strings.ToLower(name) {
	case "", config.CaseASCII:
		return ASCII{}, nil
	case config.CaseUnicode:
		return Unicode{}, nil
	case config.CaseLocale:
		return NewLocale(locale)
	default:
		return nil, fmt.Errorf("unknown case policy: %s", name)
	}
}

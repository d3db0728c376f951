package transform

import "unicode/utf8"

// Stats counts characters as Unicode code points. A byte that is not valid
// UTF-8 counts as one character.
type Stats struct {
	OriginalLen    int
	TransformedLen int
	Increase       int
}

func Measure(original, transformed string) Stats {
	o := utf8.RuneCountInString(original)
	t := utf8.RuneCountInString(transformed)
	return Stats{OriginalLen: o, TransformedLen: t, Increase: t - o}
}

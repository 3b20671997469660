package help

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Wrap breaks text into lines not wider than limit, breaking at white space.
// A word wider than limit gets a line of its own. Line breaks in text are
// kept. If limit is less than 1, text is only split at its line breaks. The
// result has at least one line.
func Wrap(text string, limit int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line, n := words[0], StringWidth(words[0])
		for _, word := range words[1:] {
			wn := StringWidth(word)
			if limit > 0 && n+1+wn > limit {
				lines = append(lines, line)
				line, n = word, wn
				continue
			}
			line += " " + word
			n += 1 + wn
		}
		lines = append(lines, line)
	}
	return lines
}

// StringWidth returns the number of terminal columns needed to display s.
// East Asian wide and fullwidth characters take two columns, combining marks
// and control characters none.
func StringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeWidth(r)
	}
	return n
}

func runeWidth(r rune) int {
	switch {
	case unicode.Is(unicode.Mn, r), unicode.IsControl(r):
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

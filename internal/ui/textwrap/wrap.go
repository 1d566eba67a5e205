// Package textwrap wraps text by display width, so wide runes such as CJK
// and emoji take the two columns a terminal gives them.
package textwrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks text into lines at most width columns wide. Newlines in text
// start a new line, runs of spaces collapse, and a word wider than width is
// split. A width below 1 is treated as 1.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var lines []string
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var line strings.Builder
		lineWidth := 0
		for _, word := range words {
			w := runewidth.StringWidth(word)
			switch {
			case lineWidth == 0:
			case lineWidth+1+w <= width:
				line.WriteByte(' ')
				lineWidth++
			default:
				lines = append(lines, line.String())
				line.Reset()
				lineWidth = 0
			}

			for w > width-lineWidth && w > 0 {
				// Word does not fit even on an empty line.
				head, tail := split(word, width-lineWidth)
				if head == "" && lineWidth == 0 {
					// A single rune wider than the line.
					head, tail = firstRune(word)
				}
				line.WriteString(head)
				lines = append(lines, line.String())
				line.Reset()
				lineWidth = 0
				word = tail
				w = runewidth.StringWidth(word)
			}
			line.WriteString(word)
			lineWidth += w
		}
		lines = append(lines, line.String())
	}
	return lines
}

// split returns the longest prefix of s no wider than width, and the rest.
func split(s string, width int) (string, string) {
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			return s[:i], s[i:]
		}
		w += rw
	}
	return s, ""
}

func firstRune(s string) (string, string) {
	for i := range s {
		if i > 0 {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// Width returns the display width of s.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to width columns, ending with an ellipsis when cut.
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

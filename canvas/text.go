package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StringWidth returns the display width of a string in terminal cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth cells, ending with "…" when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// Pad right-pads s with spaces to exactly width cells, truncating if longer.
func Pad(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// WrapText breaks text into lines of at most maxWidth cells at word
// boundaries. Words longer than a line are split at character boundaries.
func WrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}

	var lines []string
	var current strings.Builder
	currentWidth := 0

	flush := func() {
		if current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
			currentWidth = 0
		}
	}

	for _, word := range strings.Fields(text) {
		wordWidth := StringWidth(word)

		// Word fits on current line
		if currentWidth > 0 && currentWidth+1+wordWidth <= maxWidth {
			current.WriteRune(' ')
			current.WriteString(word)
			currentWidth += 1 + wordWidth
			continue
		}

		flush()
		for wordWidth > maxWidth {
			head := runewidth.Truncate(word, maxWidth, "")
			if head == "" {
				// Can't even fit one character, force it
				head = string([]rune(word)[:1])
			}
			lines = append(lines, head)
			word = word[len(head):]
			wordWidth = StringWidth(word)
		}
		if word != "" {
			current.WriteString(word)
			currentWidth = wordWidth
		}
	}
	flush()

	return lines
}

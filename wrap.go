package mdexport

import (
	"strings"
	"unicode/utf8"
)

// avgCharWidthFactor estimates glyph width as a fraction of the font size.
// The wrapper uses this approximation instead of real font metrics; a space
// counts as one character at the same rate.
const avgCharWidthFactor = 0.52

// wrapText splits text into lines that fit within maxWidthMM at the given
// point size under the average-character-width model. Words are never split;
// a single word wider than the budget is placed alone on its own line.
// The result is never empty: empty input yields one empty line.
func wrapText(text string, fontSize, maxWidthMM float64) []string {
	maxWidthPt := mmToPt(maxWidthMM)
	charWidthPt := fontSize * avgCharWidthFactor

	var lines []string
	var current strings.Builder
	currentWidth := 0.0

	for _, word := range strings.Fields(text) {
		wordWidth := float64(utf8.RuneCountInString(word)) * charWidthPt
		spaceWidth := charWidthPt

		nextWidth := wordWidth
		if current.Len() > 0 {
			nextWidth = currentWidth + spaceWidth + wordWidth
		}

		if nextWidth > maxWidthPt && current.Len() > 0 {
			lines = append(lines, strings.TrimRight(current.String(), " "))
			current.Reset()
			currentWidth = 0
		}

		if current.Len() > 0 {
			current.WriteByte(' ')
			currentWidth += spaceWidth
		}
		current.WriteString(word)
		currentWidth += wordWidth
	}

	if current.Len() > 0 {
		lines = append(lines, strings.TrimRight(current.String(), " "))
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

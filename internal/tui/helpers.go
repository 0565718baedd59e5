package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// clipEnd fits s into width display cells, replacing the overflow at the end
// with an ellipsis. Wide runes count as two cells.
func clipEnd(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// clipStart is clipEnd for paths: the overflow is dropped from the front so
// the file name stays visible.
func clipStart(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}

	keep := width - runewidth.StringWidth(ellipsis)
	runes := []rune(s)
	i, w := len(runes), 0
	for i > 0 {
		rw := runewidth.RuneWidth(runes[i-1])
		if w+rw > keep {
			break
		}
		w += rw
		i--
	}
	return ellipsis + string(runes[i:])
}

// echoLine is a submitted command as shown in the transcript: one row behind
// the prompt mark.
func echoLine(line string, width int) string {
	return clipEnd(promptMark+firstLine(line), width)
}

// firstLine returns s up to its first line break.
func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// OverlayRow replaces one row of a rendered block with the given line,
// ANSI-safe. Used to pin the nav bar over the top of the scrolled content
// without re-rendering the whole pane.
func OverlayRow(base string, row int, line string, width, height int) string {
	if width <= 0 || height <= 0 {
		return base
	}
	lines := splitToLines(base, height)
	if row < 0 || row >= height {
		return strings.Join(lines, "\n")
	}
	lines[row] = padRightANSI(line, width)
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

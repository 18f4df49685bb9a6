package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// NavItem is one entry in the navigator bar.
type NavItem struct {
	ID       int
	Label    string
	Active   bool
	Hovering bool
}

// NavBar renders the section navigator as a single horizontal bar, the same
// shape inline and pinned. Left shifts the bar rightward (pinned layouts
// keep the inline horizontal offset so the bar does not jump).
type NavBar struct {
	Items  []NavItem
	Left   int
	Pinned bool
}

// Span is the column range an item occupies in the rendered bar, used by
// the caller to map clicks and pointer motion back to section ids.
type Span struct {
	ID    int
	Start int // inclusive column
	End   int // exclusive column
}

const navSeparator = " │ "

var (
	navBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorSubtle)
	navPinnedStyle = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorSubtle)
	navActiveStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)
	navHoverStyle = lipgloss.NewStyle().
			Foreground(colorFocus).
			Underline(true)
	navSepStyle = lipgloss.NewStyle().Foreground(colorBorder)
)

// Render draws the bar as one line, truncated to width. Height is accepted
// for Widget conformance; the bar always occupies a single row.
func (n NavBar) Render(width, _ int) string {
	if width <= 0 || len(n.Items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", clampLeft(n.Left, width)))
	for i, item := range n.Items {
		if i > 0 {
			b.WriteString(navSepStyle.Render(navSeparator))
		}
		b.WriteString(n.renderItem(item))
	}
	bar := ansi.Truncate(b.String(), width, "…")
	if n.Pinned {
		return navPinnedStyle.Render(padRightANSI(bar, width))
	}
	return navBarStyle.Render(bar)
}

func (n NavBar) renderItem(item NavItem) string {
	label := item.Label
	switch {
	case item.Active:
		return navActiveStyle.Render("▸ " + label)
	case item.Hovering:
		return navHoverStyle.Render(label)
	default:
		return label
	}
}

// Spans reports each item's column range in the rendered bar. Ranges track
// Render exactly: active items carry a two-cell marker prefix.
func (n NavBar) Spans(width int) []Span {
	col := clampLeft(n.Left, width)
	out := make([]Span, 0, len(n.Items))
	for i, item := range n.Items {
		if i > 0 {
			col += ansi.StringWidth(navSeparator)
		}
		w := ansi.StringWidth(item.Label)
		if item.Active {
			w += 2
		}
		end := col + w
		if end > width {
			end = width
		}
		if col >= width {
			break
		}
		out = append(out, Span{ID: item.ID, Start: col, End: end})
		col += w
	}
	return out
}

// Height is the number of rows the bar occupies.
func (n NavBar) Height() int { return 1 }

func clampLeft(left, width int) int {
	if left < 0 {
		return 0
	}
	if left >= width {
		return 0
	}
	return left
}

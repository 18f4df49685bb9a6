package core

import (
	"strings"

	"github.com/aabacada/navihive/internal/document"
	"github.com/aabacada/navihive/navigator"
)

// navIndent is the inline nav bar's horizontal offset inside the content.
// While pinned the bar keeps this offset so it does not shift sideways.
const navIndent = 2

// layout fixes every element's line position inside the scrolled content:
// banner, inline nav bar, then the rendered section bodies. It is rebuilt
// whenever the document or the width changes and backs the Surface's
// element lookups.
type layout struct {
	banner    []string
	navRow    int // content line index of the inline nav bar
	navHeight int
	bodyStart int // content line index of the first body line
	body      []string
	ranges    map[int][2]int // section id -> rendered [start, end)
}

func buildLayout(doc *document.Document) *layout {
	l := &layout{navHeight: 1, ranges: make(map[int][2]int)}

	l.banner = append(l.banner, bannerTitleStyle.Render(doc.Title))
	if doc.Path != "" {
		l.banner = append(l.banner, bannerPathStyle.Render(doc.Path))
	}
	l.banner = append(l.banner, "")
	l.banner = append(l.banner, doc.IntroLines()...)

	l.navRow = len(l.banner)
	l.bodyStart = l.navRow + l.navHeight + 1 // one blank line below the bar

	l.body = doc.BodyLines()
	for _, s := range doc.Sections {
		l.ranges[s.ID] = [2]int{s.Start, s.End}
	}
	return l
}

// content assembles the scrollable text around the current inline bar.
func (l *layout) content(bar string) string {
	lines := make([]string, 0, len(l.banner)+l.navHeight+1+len(l.body))
	lines = append(lines, l.banner...)
	lines = append(lines, bar, "")
	lines = append(lines, l.body...)
	return strings.Join(lines, "\n")
}

func (l *layout) total() int {
	return l.bodyStart + len(l.body)
}

// element resolves the engine's derived ids to content-relative bounds.
func (l *layout) element(id string) (navigator.Rect, bool) {
	switch id {
	case navigator.MarkerID:
		// The hidden marker sits where the first section begins.
		return navigator.Rect{Top: l.bodyStart, Height: 1}, true
	case navigator.ContainerID:
		return navigator.Rect{Top: l.navRow, Left: navIndent, Height: l.navHeight}, true
	}
	sid, ok := navigator.ParseElementID(id)
	if !ok {
		return navigator.Rect{}, false
	}
	rng, ok := l.ranges[sid]
	if !ok {
		return navigator.Rect{}, false
	}
	return navigator.Rect{Top: l.bodyStart + rng[0], Height: rng[1] - rng[0]}, true
}

package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/aabacada/navihive/internal/config"
	"github.com/aabacada/navihive/navigator"
)

func testConfig() config.Config {
	var c config.Config
	c.UI.Style = "notty"
	c.UI.CompactWidth = 40
	c.UI.ScrollMargin = 2
	return c
}

func longDoc() string {
	var b strings.Builder
	b.WriteString("Intro paragraph.\n")
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		b.WriteString("\n## " + name + "\n")
		for i := 0; i < 30; i++ {
			b.WriteString("\nBody text for " + name + ".\n")
		}
	}
	return b.String()
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	doc := parseRendered(t, longDoc(), 70)
	m := NewModel(testConfig(), zap.NewNop(), doc, nil)

	tm, _ := m.Update(tea.WindowSizeMsg{Width: 72, Height: 12})
	tm, _ = tm.(Model).Update(measureMsg{})
	return tm.(Model)
}

// collect runs a command tree and returns every message it produces. Tick
// commands resolve after their short real-time delay.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestModelMountFlow(t *testing.T) {
	m := newTestModel(t)
	if !m.ready || !m.mounted {
		t.Fatalf("ready = %v, mounted = %v after mount", m.ready, m.mounted)
	}
	if !m.engine.Enabled() {
		t.Fatal("engine disabled with three sections")
	}
	if got := m.engine.State(); got != navigator.Floating {
		t.Fatalf("state = %v at top of document, want Floating", got)
	}
}

func TestScrollPastNavPins(t *testing.T) {
	m := newTestModel(t)

	m.vp.SetYOffset(m.layout.bodyStart + 5)
	tm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = tm.(Model)

	if got := m.engine.State(); got != navigator.Pinned {
		t.Fatalf("state = %v after scrolling past the nav, want Pinned", got)
	}

	var pinMsg *PinChangedMsg
	for _, msg := range collect(cmd) {
		if pm, ok := msg.(PinChangedMsg); ok {
			pinMsg = &pm
		}
	}
	if pinMsg == nil || !pinMsg.Pinned {
		t.Fatalf("pin transition not published, got %+v", pinMsg)
	}

	tm, _ = m.Update(*pinMsg)
	m = tm.(Model)
	if !m.pinned || !m.sink.hasKnown {
		t.Fatalf("pinned = %v, hasKnown = %v after PinChangedMsg", m.pinned, m.sink.hasKnown)
	}

	// Scrolling back above the anchor unpins.
	m.vp.SetYOffset(0)
	tm, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m = tm.(Model)
	if got := m.engine.State(); got != navigator.Floating {
		t.Fatalf("state = %v back at the top, want Floating", got)
	}
	found := false
	for _, msg := range collect(cmd) {
		if pm, ok := msg.(PinChangedMsg); ok && !pm.Pinned {
			found = true
		}
	}
	if !found {
		t.Fatal("unpin transition not published")
	}
}

func TestJumpSelectsSection(t *testing.T) {
	m := newTestModel(t)

	tm, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = tm.(Model)
	if !m.jump.Active {
		t.Fatal("jump mode not active after /")
	}

	for _, r := range "beta" {
		tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = tm.(Model)
	}
	if m.jump.Query != "beta" {
		t.Fatalf("query = %q, want beta", m.jump.Query)
	}

	tm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = tm.(Model)
	if m.jump.Active {
		t.Fatal("jump mode still active after enter")
	}
	if !m.surface.anim.active {
		t.Fatal("smooth scroll not armed by the jump")
	}
	selected := 0
	for _, msg := range collect(cmd) {
		if sm, ok := msg.(SectionSelectedMsg); ok {
			selected = sm.ID
		}
	}
	if selected != 2 {
		t.Fatalf("selected section = %d, want 2 (Beta)", selected)
	}

	// Drive the animation to completion.
	for i := 0; i < 500 && m.surface.anim.active; i++ {
		tm, _ = m.Update(scrollTickMsg{})
		m = tm.(Model)
	}
	if m.surface.anim.active {
		t.Fatal("scroll animation never settled")
	}

	start, _, ok := m.doc.SectionRange(2)
	if !ok {
		t.Fatal("section 2 has no rendered range")
	}
	want := m.layout.bodyStart + start - m.cfg.UI.ScrollMargin
	if m.vp.YOffset != want {
		t.Fatalf("YOffset = %d after jump, want %d", m.vp.YOffset, want)
	}
	if active, ok := m.engine.Active(); !ok || active != 2 {
		t.Fatalf("active = %d (%v), want 2", active, ok)
	}
}

func TestJumpEscCancels(t *testing.T) {
	m := newTestModel(t)
	tm, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = tm.(Model)
	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = tm.(Model)
	if m.jump.Active {
		t.Fatal("jump mode still active after esc")
	}
	if m.surface.anim.active {
		t.Fatal("esc armed a scroll")
	}
}

func TestTabCyclesSections(t *testing.T) {
	m := newTestModel(t)
	tm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = tm.(Model)
	selected := 0
	for _, msg := range collect(cmd) {
		if sm, ok := msg.(SectionSelectedMsg); ok {
			selected = sm.ID
		}
	}
	if selected != 1 {
		t.Fatalf("tab selected %d, want first section", selected)
	}
}

func TestResizeRecomputesCompact(t *testing.T) {
	m := newTestModel(t)
	if m.engine.PinnedLeft() != navIndent {
		t.Fatalf("PinnedLeft = %d on wide layout, want %d", m.engine.PinnedLeft(), navIndent)
	}

	tm, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 12})
	m = tm.(Model)
	tm, _ = m.Update(measureMsg{})
	m = tm.(Model)
	if m.engine.PinnedLeft() != 0 {
		t.Fatalf("PinnedLeft = %d on compact layout, want 0", m.engine.PinnedLeft())
	}
}

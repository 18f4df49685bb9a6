package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/aabacada/navihive/navigator"
	"github.com/aabacada/navihive/widgets"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case measureMsg:
		return m.handleMeasure()
	case scrollTickMsg:
		return m.handleScrollTick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case DocumentChangedMsg:
		return m.handleDocumentChanged()
	case PinChangedMsg:
		// Record the flag before anything downstream re-evaluates the pin,
		// so the engine sees it as already known.
		m.pinned = msg.Pinned
		m.sink.knownPinned = msg.Pinned
		m.sink.hasKnown = true
		if msg.Pinned {
			m.setStatus("navigator pinned")
		} else {
			m.setStatus("navigator floating")
		}
		m.logger.Debug("pin changed", zap.Bool("pinned", msg.Pinned))
		m.refreshContent()
		return m, nil
	case SectionSelectedMsg:
		label := m.sectionLabel(msg.ID)
		m.setStatus(fmt.Sprintf("jumped to %s", label))
		m.logger.Debug("section selected", zap.Int("id", msg.ID), zap.String("label", label))
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.vp.Width = msg.Width
	m.vp.Height = msg.Height - 1 // footer row
	m.engine.SetCompact(msg.Width < m.cfg.UI.CompactWidth)
	m.relayout()
	m.ready = true
	// Geometry is measured after a short settle, like on first mount.
	return m, measureCmd()
}

func (m Model) handleMeasure() (tea.Model, tea.Cmd) {
	if !m.mounted {
		m.engine.Mount()
		m.mounted = true
	} else {
		m.engine.HandleResize()
	}
	cmds := m.drainEngine()
	m.refreshContent()
	return m, tea.Batch(cmds...)
}

func (m Model) handleScrollTick() (tea.Model, tea.Cmd) {
	m.surface.anim.step(m.vp)
	m.engine.HandleScroll()
	cmds := m.drainEngine() // re-arms the tick while the animation runs
	m.refreshContent()
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.jump.Active {
		return m.handleJumpKey(msg)
	}
	switch {
	case m.keys.IsAction(msg, "quit"):
		m.quitting = true
		return m, tea.Quit
	case m.keys.IsAction(msg, "scroll_up"):
		return m.scrollBy(-1)
	case m.keys.IsAction(msg, "scroll_down"):
		return m.scrollBy(1)
	case m.keys.IsAction(msg, "page_up"):
		return m.scrollBy(-m.vp.Height)
	case m.keys.IsAction(msg, "page_down"):
		return m.scrollBy(m.vp.Height)
	case m.keys.IsAction(msg, "top"):
		return m.scrollBy(-m.vp.YOffset)
	case m.keys.IsAction(msg, "bottom"):
		return m.scrollBy(m.vp.TotalLineCount())
	case m.keys.IsAction(msg, "jump"):
		m.jump.open()
		return m, nil
	case m.keys.IsAction(msg, "next_section"):
		return m.selectAdjacent(1)
	case m.keys.IsAction(msg, "prev_section"):
		return m.selectAdjacent(-1)
	}
	return m, nil
}

func (m Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.jump.close()
		return m, nil
	case tea.KeyBackspace:
		if len(m.jump.Query) > 0 {
			m.jump.Query = m.jump.Query[:len(m.jump.Query)-1]
		}
		return m, nil
	case tea.KeyEnter:
		query := m.jump.Query
		m.jump.close()
		matches := rankSections(m.engine.Sections(), query)
		if len(matches) == 0 {
			m.setStatus(fmt.Sprintf("no section matches %q", query))
			return m, nil
		}
		m.engine.Select(matches[0].ID)
		cmds := m.drainEngine()
		return m, tea.Batch(cmds...)
	case tea.KeySpace:
		m.jump.Query += " "
		return m, nil
	case tea.KeyRunes:
		m.jump.Query += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		return m.scrollBy(-3)
	case msg.Button == tea.MouseButtonWheelDown:
		return m.scrollBy(3)
	case msg.Action == tea.MouseActionMotion:
		return m.updateHover(msg.X, msg.Y)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.handleClick(msg.X, msg.Y)
	}
	return m, nil
}

// barAt reports the nav bar occupying the given screen row, if any: the
// pinned overlay on row 0, or the inline bar scrolled into view.
func (m *Model) barAt(y int) ([]widgets.Span, bool) {
	if m.layout == nil {
		return nil, false
	}
	if m.engine.State() == navigator.Pinned && y == 0 {
		return m.navBar(true).Spans(m.width), true
	}
	if m.vp.YOffset+y == m.layout.navRow {
		return m.navBar(false).Spans(m.width), true
	}
	return nil, false
}

func (m Model) updateHover(x, y int) (tea.Model, tea.Cmd) {
	target := 0
	if spans, ok := m.barAt(y); ok {
		for _, sp := range spans {
			if x >= sp.Start && x < sp.End {
				target = sp.ID
				break
			}
		}
	}
	if target == m.hovered {
		return m, nil
	}
	if m.hovered != 0 {
		m.engine.SetHoverIntent(m.hovered, false)
	}
	if target != 0 {
		m.engine.SetHoverIntent(target, true)
	}
	m.hovered = target
	m.refreshContent()
	return m, nil
}

func (m Model) handleClick(x, y int) (tea.Model, tea.Cmd) {
	spans, ok := m.barAt(y)
	if !ok {
		return m, nil
	}
	for _, sp := range spans {
		if x >= sp.Start && x < sp.End {
			m.engine.Select(sp.ID)
			cmds := m.drainEngine()
			return m, tea.Batch(cmds...)
		}
	}
	return m, nil
}

func (m Model) scrollBy(lines int) (tea.Model, tea.Cmd) {
	m.surface.anim.active = false // user scroll cancels an in-flight jump
	m.vp.SetYOffset(m.vp.YOffset + lines)
	m.engine.HandleScroll()
	cmds := m.drainEngine()
	m.refreshContent()
	return m, tea.Batch(cmds...)
}

// selectAdjacent jumps to the section before or after the active one.
func (m Model) selectAdjacent(delta int) (tea.Model, tea.Cmd) {
	sections := m.engine.Sections()
	if len(sections) == 0 {
		return m, nil
	}
	idx := 0
	if active, ok := m.engine.Active(); ok {
		for i, s := range sections {
			if s.ID == active {
				idx = i + delta
				break
			}
		}
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sections) {
		idx = len(sections) - 1
	}
	m.engine.Select(sections[idx].ID)
	cmds := m.drainEngine()
	return m, tea.Batch(cmds...)
}

func (m Model) handleDocumentChanged() (tea.Model, tea.Cmd) {
	if m.reload == nil {
		return m, nil
	}
	doc, err := m.reload()
	if err != nil {
		m.setError(fmt.Errorf("reload: %w", err))
		m.logger.Warn("document reload failed", zap.Error(err))
		return m, nil
	}
	m.doc = doc
	m.relayout() // re-applies the section list against the new layout
	m.engine.HandleResize()
	cmds := m.drainEngine()
	m.setStatus("document reloaded")
	m.logger.Info("document reloaded", zap.String("path", doc.Path), zap.Int("sections", len(doc.Sections)))
	return m, tea.Batch(cmds...)
}

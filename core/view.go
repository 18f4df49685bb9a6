package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/aabacada/navihive/navigator"
	"github.com/aabacada/navihive/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	content := m.vp.View()
	if m.engine.State() == navigator.Pinned {
		bar := m.navBar(true).Render(m.width, 1)
		content = widgets.OverlayRow(content, 0, bar, m.width, m.vp.Height)
	}
	return content + "\n" + m.footer()
}

func (m Model) footer() string {
	if m.jump.Active {
		return m.jumpFooter()
	}
	if m.statusErr {
		return statusErrBarStyle.Render(padLine(m.status, m.width))
	}
	help := m.helpHint()
	gap := m.width - len(m.status) - len(help)
	if gap < 1 {
		return statusBarStyle.Render(padLine(m.status, m.width))
	}
	line := m.status + strings.Repeat(" ", gap) + help
	return statusBarStyle.Render(line)
}

func (m Model) jumpFooter() string {
	prompt := jumpPromptStyle.Render("jump: ") + m.jump.Query
	matches := rankSections(m.engine.Sections(), m.jump.Query)
	if len(matches) > 0 {
		labels := make([]string, 0, len(matches))
		for i, match := range matches {
			if i == 3 {
				labels = append(labels, fmt.Sprintf("+%d", len(matches)-i))
				break
			}
			labels = append(labels, match.Label)
		}
		prompt += jumpMatchStyle.Render("  (" + strings.Join(labels, ", ") + ")")
	}
	return padLine(prompt, m.width)
}

func (m Model) helpHint() string {
	return "j/k scroll · / jump · tab next · q quit"
}

func padLine(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

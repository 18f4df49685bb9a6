package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusMsg updates the footer status line.
type StatusMsg struct {
	Text  string
	IsErr bool
}

// PinChangedMsg reports an engine pin transition to the app.
type PinChangedMsg struct {
	Pinned bool
}

// SectionSelectedMsg reports a completed section selection.
type SectionSelectedMsg struct {
	ID int
}

// DocumentChangedMsg is sent by the file watcher when the open document
// changed on disk.
type DocumentChangedMsg struct{}

// measureMsg triggers the deferred geometry measurement once layout has
// had a moment to settle.
type measureMsg struct{}

// scrollTickMsg drives one frame of the smooth-scroll animation.
type scrollTickMsg struct{}

// measureDelay tolerates layout not being final right after a resize.
const measureDelay = 80 * time.Millisecond

// scrollFrame approximates an animation frame.
const scrollFrame = 16 * time.Millisecond

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func measureCmd() tea.Cmd {
	return tea.Tick(measureDelay, func(time.Time) tea.Msg { return measureMsg{} })
}

func scrollTickCmd() tea.Cmd {
	return tea.Tick(scrollFrame, func(time.Time) tea.Msg { return scrollTickMsg{} })
}

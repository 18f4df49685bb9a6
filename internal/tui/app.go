// Package tui runs the terminal program: it wires the document, the engine
// host and the file watcher together around a Bubble Tea event loop.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/aabacada/navihive/core"
	"github.com/aabacada/navihive/internal/config"
	"github.com/aabacada/navihive/internal/document"
	"github.com/aabacada/navihive/internal/watch"
)

// Run opens path and blocks until the user quits. The document is watched
// for changes while the program runs; edits reload it in place.
func Run(cfg config.Config, logger *zap.Logger, path string) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}

	reload := func() (*document.Document, error) { return document.Load(path) }
	m := core.NewModel(cfg, logger, doc, reload)

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	var watcher *watch.Watcher
	if cfg.Watch.Enabled {
		debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
		watcher, err = watch.New(path, debounce, func() {
			p.Send(core.DocumentChangedMsg{})
		}, logger)
		if err != nil {
			logger.Warn("file watch unavailable", zap.Error(err))
		} else if err := watcher.Start(); err != nil {
			logger.Warn("file watch failed to start", zap.Error(err))
			watcher = nil
		}
	}

	_, err = p.Run()
	if watcher != nil {
		watcher.Stop()
	}
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

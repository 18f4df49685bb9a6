package core

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/aabacada/navihive/internal/config"
	"github.com/aabacada/navihive/internal/document"
	"github.com/aabacada/navihive/navigator"
	"github.com/aabacada/navihive/widgets"
)

// engineSink collects engine callbacks fired synchronously inside Update so
// they can be re-delivered as messages. It also holds the app's last-known
// pin flag, which the engine consults before re-notifying.
type engineSink struct {
	pin         *bool
	selections  []int
	knownPinned bool
	hasKnown    bool
}

func (s *engineSink) known() (bool, bool) { return s.knownPinned, s.hasKnown }

// Model is the app state.
type Model struct {
	cfg    config.Config
	logger *zap.Logger
	keys   *KeyRegistry

	doc    *document.Document
	reload func() (*document.Document, error)

	vp      *viewport.Model
	surface *docSurface
	engine  *navigator.Engine
	sink    *engineSink
	layout  *layout

	width   int
	height  int
	ready   bool
	mounted bool
	pinned  bool // externally-known pin flag, fed back to the engine
	hovered int  // section id under the pointer, 0 when none
	jump    JumpMode

	status    string
	statusErr bool
	quitting  bool
}

// NewModel builds the app around a parsed document. reload re-parses the
// document from disk for live updates; it may be nil.
func NewModel(cfg config.Config, logger *zap.Logger, doc *document.Document, reload func() (*document.Document, error)) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	vp := viewport.New(0, 0)
	surface := newDocSurface(&vp)
	sink := &engineSink{}

	m := Model{
		cfg:     cfg,
		logger:  logger,
		keys:    NewKeyRegistry(DefaultBindings()),
		doc:     doc,
		reload:  reload,
		vp:      &vp,
		surface: surface,
		sink:    sink,
		status:  "Ready",
	}
	m.engine = navigator.New(surface, navigator.Options{
		OnPinChange: func(pinned bool) {
			v := pinned
			sink.pin = &v
		},
		KnownPinned: sink.known,
		OnSectionSelect: func(id int) {
			sink.selections = append(sink.selections, id)
		},
		ScrollMargin: cfg.UI.ScrollMargin,
	})
	m.engine.SetSections(doc.NavigatorSections())
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// relayout re-renders the document at the current width and rebuilds the
// content layout behind the Surface.
func (m *Model) relayout() {
	if err := m.doc.Render(m.width-2, m.cfg.UI.Style); err != nil {
		m.setError(err)
		return
	}
	m.layout = buildLayout(m.doc)
	m.surface.setLayout(m.layout)
	// Re-apply the section list now that elements resolve, so the tracker
	// holds a handle per section.
	m.engine.SetSections(m.doc.NavigatorSections())
	m.refreshContent()
}

// refreshContent recomposes the scrolled text around the inline bar so
// activity and hover changes show up.
func (m *Model) refreshContent() {
	if m.layout == nil {
		return
	}
	bar := m.navBar(false)
	m.vp.SetContent(appStyle.Render(m.layout.content(bar.Render(m.width, 1))))
}

// navBar builds the bar for either placement.
func (m *Model) navBar(pinnedPlacement bool) widgets.NavBar {
	active, hasActive := m.engine.Active()
	items := make([]widgets.NavItem, 0, len(m.engine.Sections()))
	for _, s := range m.engine.Sections() {
		items = append(items, widgets.NavItem{
			ID:       s.ID,
			Label:    s.Label,
			Active:   hasActive && s.ID == active,
			Hovering: m.engine.Hovering(s.ID),
		})
	}
	if pinnedPlacement {
		return widgets.NavBar{Items: items, Left: m.engine.PinnedLeft(), Pinned: true}
	}
	return widgets.NavBar{Items: items, Left: navIndent}
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusErr = false
}

func (m *Model) setError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// sectionLabel resolves a section id to its label.
func (m *Model) sectionLabel(id int) string {
	for _, s := range m.engine.Sections() {
		if s.ID == id {
			return s.Label
		}
	}
	return ""
}

// drainEngine converts buffered engine callbacks into messages.
func (m *Model) drainEngine() []tea.Cmd {
	var cmds []tea.Cmd
	if m.sink.pin != nil {
		v := *m.sink.pin
		m.sink.pin = nil
		cmds = append(cmds, func() tea.Msg { return PinChangedMsg{Pinned: v} })
	}
	for _, id := range m.sink.selections {
		sid := id
		cmds = append(cmds, func() tea.Msg { return SectionSelectedMsg{ID: sid} })
	}
	m.sink.selections = nil
	if m.surface.anim.active {
		cmds = append(cmds, scrollTickCmd())
	}
	return cmds
}

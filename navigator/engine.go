package navigator

// Options configures an Engine. All fields are optional.
type Options struct {
	// OnPinChange receives pin transitions (one-way, §ExternalSync).
	OnPinChange func(pinned bool)
	// KnownPinned reports the host's last-known pinned flag; a transition
	// matching it is not re-published.
	KnownPinned func() (pinned bool, ok bool)
	// OnSectionSelect receives the decoded section id after a jump.
	OnSectionSelect func(sectionID int)
	// OnSectionEnter fires when a section crosses into the visibility band.
	OnSectionEnter func(sectionID int)
	// Compact forces the pinned left offset to zero (the narrow-layout flag,
	// computed by the host).
	Compact bool
	// ScrollMargin overrides the gap left above a jump target.
	ScrollMargin int
}

// Engine wires the probe, pin controller, visibility tracker and dispatcher
// behind one façade. An engine with no sections is inert: nothing probes,
// observes, or scrolls until the host supplies a non-empty list.
type Engine struct {
	surface  Surface
	opts     Options
	probe    *Probe
	pin      *PinController
	tracker  *Tracker
	hover    *HoverIntents
	dispatch *Dispatcher
	sections []Section
}

func New(surface Surface, opts Options) *Engine {
	e := &Engine{surface: surface, opts: opts}
	e.probe = NewProbe(surface)
	e.pin = NewPinController(surface, e.probe, NewSync(opts.OnPinChange, opts.KnownPinned))
	e.tracker = NewTracker(surface, opts.OnSectionEnter)
	e.hover = NewHoverIntents()
	e.dispatch = NewDispatcher(surface, e.probe, e.pin, e.hover, opts.ScrollMargin, opts.OnSectionSelect)
	return e
}

// SetSections replaces the tracked list. Every existing observation is
// disposed before new ones are created, and hover entries are dropped
// since their ids may no longer exist. An empty list tears the engine
// down to its inert state.
func (e *Engine) SetSections(sections []Section) {
	e.sections = sections
	e.hover.Reset()
	e.tracker.SetSections(sections)
}

// Sections returns the current list.
func (e *Engine) Sections() []Section { return e.sections }

// Enabled reports whether the engine has anything to track.
func (e *Engine) Enabled() bool { return len(e.sections) > 0 }

// Mount runs the initial measurement and visibility pass. The host calls
// this once layout has settled (typically a short delay after startup).
func (e *Engine) Mount() {
	if !e.Enabled() {
		return
	}
	e.probe.Measure()
	e.tracker.Observe()
}

// HandleScroll processes one scroll event: the pin transition is evaluated
// before the visibility pass, so anything rendered downstream of this call
// sees a consistent (state, active) pair.
func (e *Engine) HandleScroll() {
	if !e.Enabled() {
		return
	}
	e.pin.Evaluate(e.surface.ScrollOffset())
	e.tracker.Observe()
}

// HandleResize re-measures geometry and re-evaluates against the new
// viewport.
func (e *Engine) HandleResize() {
	if !e.Enabled() {
		return
	}
	e.probe.Measure()
	e.pin.Evaluate(e.surface.ScrollOffset())
	e.tracker.Observe()
}

// Select jumps to a section through the dispatcher.
func (e *Engine) Select(sectionID int) {
	if !e.Enabled() {
		return
	}
	e.dispatch.Select(sectionID)
}

// SetHoverIntent toggles a section's hover affordance.
func (e *Engine) SetHoverIntent(sectionID int, on bool) {
	if !e.Enabled() {
		return
	}
	e.dispatch.SetHoverIntent(sectionID, on)
}

// SetCompact flips the narrow-layout flag. Hosts recompute this on resize.
func (e *Engine) SetCompact(compact bool) { e.opts.Compact = compact }

// Hovering reports a section's hover affordance flag.
func (e *Engine) Hovering(sectionID int) bool { return e.hover.Get(sectionID) }

// Active returns the sticky active-section id.
func (e *Engine) Active() (int, bool) { return e.tracker.Active() }

// State returns the current pin state.
func (e *Engine) State() PinState { return e.pin.State() }

// PinnedLeft is the horizontal offset the navigator keeps while pinned so
// it does not shift when it detaches from the content flow. Zero in
// compact layouts and before the first successful measurement.
func (e *Engine) PinnedLeft() int {
	if e.opts.Compact {
		return 0
	}
	if geo, ok := e.probe.Geometry(); ok {
		return geo.Left
	}
	return 0
}

// Height is the navigator container's last-measured height.
func (e *Engine) Height() int {
	if geo, ok := e.probe.Geometry(); ok {
		return geo.Height
	}
	return 0
}

// Close releases every observation. No callback fires after Close.
func (e *Engine) Close() {
	e.tracker.Close()
	e.sections = nil
}

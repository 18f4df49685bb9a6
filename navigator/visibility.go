package navigator

// Viewport band for section entry, as fractions of the viewport height.
// A section counts as entered once it is no longer confined to the top 20%
// or the bottom 70% of the viewport, leaving a deliberately narrow middle
// band so that only one section enters at a time under normal scrolling.
const (
	bandTopFraction    = 20 // percent excluded at the top
	bandBottomFraction = 70 // percent excluded at the bottom
)

// observation is one live subscription for a section's element. Entry is
// edge-triggered: the handle remembers whether the element was inside the
// band so each crossing fires exactly once.
type observation struct {
	sectionID int
	elementID string
	inside    bool
}

// Tracker keeps one observation per section whose element exists, and the
// sticky active-section pointer fed by entry events.
type Tracker struct {
	surface  Surface
	handles  []*observation
	activeID int
	hasActiv bool
	onEnter  func(sectionID int)
}

// NewTracker builds a tracker with no observations. onEnter may be nil.
func NewTracker(surface Surface, onEnter func(sectionID int)) *Tracker {
	return &Tracker{surface: surface, onEnter: onEnter}
}

// SetSections replaces every observation: all existing handles are disposed
// before new ones are created, so no element is ever observed twice and no
// stale handle survives a list change. Sections whose element is missing
// get no handle; they can only activate on a later list-change pass.
func (t *Tracker) SetSections(sections []Section) {
	t.Close()
	if len(sections) == 0 {
		return
	}
	t.handles = make([]*observation, 0, len(sections))
	for _, s := range sections {
		eid := ElementID(s.ID)
		if _, ok := t.surface.Element(eid); !ok {
			continue
		}
		t.handles = append(t.handles, &observation{sectionID: s.ID, elementID: eid})
	}
}

// Observe evaluates every handle against the current viewport band and
// fires entry events for band crossings. Events are delivered in handle
// order within one pass; the most recently delivered entry wins.
func (t *Tracker) Observe() {
	top, bottom, ok := t.band()
	if !ok {
		return
	}
	for _, h := range t.handles {
		rect, found := t.surface.Element(h.elementID)
		if !found {
			continue
		}
		inside := rect.Top < bottom && rect.Top+rect.Height > top
		if inside && !h.inside {
			t.activeID = h.sectionID
			t.hasActiv = true
			if t.onEnter != nil {
				t.onEnter(h.sectionID)
			}
		}
		h.inside = inside
	}
}

// band returns the document-relative row range a section must intersect to
// count as entered. Tiny viewports still get a one-row band.
func (t *Tracker) band() (top, bottom int, ok bool) {
	h := t.surface.ViewportHeight()
	if h <= 0 {
		return 0, 0, false
	}
	scroll := t.surface.ScrollOffset()
	top = scroll + h*bandTopFraction/100
	bottom = scroll + h*(100-bandBottomFraction)/100
	if bottom <= top {
		bottom = top + 1
	}
	return top, bottom, true
}

// Active returns the sticky active-section id. It is only ever overwritten
// by a newer entry event, never reset by a section leaving the viewport.
func (t *Tracker) Active() (int, bool) {
	return t.activeID, t.hasActiv
}

// HandleCount reports the number of live observations.
func (t *Tracker) HandleCount() int { return len(t.handles) }

// Close disposes every observation. The active pointer is deliberately
// left alone; stickiness survives list changes.
func (t *Tracker) Close() {
	t.handles = nil
}

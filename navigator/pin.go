package navigator

// PinState is the navigator's layout state: inline in the scrolled content
// (Floating) or fixed to the top of the container (Pinned).
type PinState int

const (
	Floating PinState = iota
	Pinned
)

func (s PinState) String() string {
	if s == Pinned {
		return "pinned"
	}
	return "floating"
}

// EvaluatePin is the transition rule: a pure function of the current scroll
// offset and the anchor's top offset. Kept free of controller state so the
// rule is testable in isolation.
func EvaluatePin(scrollOffset, anchorTop int) PinState {
	if scrollOffset > anchorTop {
		return Pinned
	}
	return Floating
}

// PinController owns the Floating/Pinned decision. State depends on the
// previous state only to avoid duplicate notifications; the rule itself is
// re-derived from scratch on every evaluation.
type PinController struct {
	surface Surface
	probe   *Probe
	sync    *Sync
	state   PinState
}

func NewPinController(surface Surface, probe *Probe, sync *Sync) *PinController {
	return &PinController{surface: surface, probe: probe, sync: sync, state: Floating}
}

func (c *PinController) State() PinState { return c.state }

// Evaluate recomputes the pin state for the given scroll offset and
// publishes the transition, if any. The anchor top is re-resolved from the
// live marker element when present; the probe snapshot is the fallback.
// Returns true when the state changed.
func (c *PinController) Evaluate(scrollOffset int) bool {
	anchorTop, ok := c.anchorTop()
	if !ok {
		return false
	}
	next := EvaluatePin(scrollOffset, anchorTop)
	if next == c.state {
		return false
	}
	c.state = next
	c.sync.Publish(next == Pinned)
	return true
}

func (c *PinController) anchorTop() (int, bool) {
	if marker, ok := c.surface.Element(MarkerID); ok {
		return marker.Top, true
	}
	if geo, ok := c.probe.Geometry(); ok {
		return geo.Top, true
	}
	return 0, false
}

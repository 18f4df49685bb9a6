package navigator

// DefaultScrollMargin is the gap left above a section after a jump. When
// pinned, the navigator's measured height is added on top so the fixed
// block does not occlude the target.
const DefaultScrollMargin = 20

// Dispatcher translates a section selection into a smooth scroll and a
// selection event, and owns hover-intent clearing on selection.
type Dispatcher struct {
	surface  Surface
	probe    *Probe
	pin      *PinController
	hover    *HoverIntents
	margin   int
	onSelect func(sectionID int)
}

func NewDispatcher(surface Surface, probe *Probe, pin *PinController, hover *HoverIntents, margin int, onSelect func(int)) *Dispatcher {
	if margin <= 0 {
		margin = DefaultScrollMargin
	}
	return &Dispatcher{surface: surface, probe: probe, pin: pin, hover: hover, margin: margin, onSelect: onSelect}
}

// Select jumps to a section. The hover entry is cleared first, regardless
// of whether the scroll can happen; a missing target element is a silent
// no-op after that. The scroll itself is smooth and never awaited.
func (d *Dispatcher) Select(sectionID int) {
	d.hover.Clear(sectionID)

	eid := ElementID(sectionID)
	rect, ok := d.surface.Element(eid)
	if !ok {
		return
	}

	offset := d.margin
	if d.pin.State() == Pinned {
		if geo, ok := d.probe.Geometry(); ok {
			offset += geo.Height
		}
	}
	target := rect.Top - offset
	if target < 0 {
		target = 0
	}
	d.surface.ScrollTo(target, true)

	// The emitted id is decoded back from the derived element id; a
	// malformed id emits nothing.
	decoded, ok := ParseElementID(eid)
	if !ok || d.onSelect == nil {
		return
	}
	d.onSelect(decoded)
}

// SetHoverIntent toggles a section's transient hover affordance.
func (d *Dispatcher) SetHoverIntent(sectionID int, on bool) {
	d.hover.Set(sectionID, on)
}

package navigator

// Geometry is the last-measured snapshot of the anchor marker and the
// navigator container. It is replaced wholesale on every measurement,
// never patched in place.
type Geometry struct {
	Top    int // document-relative top of the anchor marker
	Left   int // left offset of the navigator container
	Height int // height of the navigator container
}

// Probe measures Geometry from the Surface. Measurements are best-effort:
// the host calls Measure after mount (deferred until layout settles) and on
// every resize, and the snapshot can go stale between those events.
type Probe struct {
	surface Surface
	geo     Geometry
	valid   bool
}

func NewProbe(surface Surface) *Probe {
	return &Probe{surface: surface}
}

// Measure takes a fresh snapshot. If either reference element is missing
// the probe is a no-op and the previous snapshot is retained.
func (p *Probe) Measure() {
	marker, ok := p.surface.Element(MarkerID)
	if !ok {
		return
	}
	container, ok := p.surface.Element(ContainerID)
	if !ok {
		return
	}
	p.geo = Geometry{Top: marker.Top, Left: container.Left, Height: container.Height}
	p.valid = true
}

// Geometry returns the current snapshot. The bool reports whether any
// measurement has succeeded yet.
func (p *Probe) Geometry() (Geometry, bool) {
	return p.geo, p.valid
}

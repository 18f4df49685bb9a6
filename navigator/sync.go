package navigator

// Sync is the one-way notification edge from the pin controller to a host.
// Nothing flows back in: the listener's return is discarded and the host
// cannot push state through it.
type Sync struct {
	listener func(pinned bool)
	known    func() (bool, bool)
}

// NewSync builds the edge. listener may be nil (emissions are discarded).
// known, when non-nil, reports the host's last-known pinned flag; a publish
// matching it is suppressed so a host that already agrees is not re-notified.
func NewSync(listener func(pinned bool), known func() (bool, bool)) *Sync {
	return &Sync{listener: listener, known: known}
}

// Publish emits a pin transition unless the host already knows the value.
func (s *Sync) Publish(pinned bool) {
	if s == nil || s.listener == nil {
		return
	}
	if s.known != nil {
		if v, ok := s.known(); ok && v == pinned {
			return
		}
	}
	s.listener(pinned)
}

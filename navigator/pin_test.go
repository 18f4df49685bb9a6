package navigator

import "testing"

func TestEvaluatePin(t *testing.T) {
	cases := []struct {
		scroll, anchor int
		want           PinState
	}{
		{0, 500, Floating},
		{400, 500, Floating},
		{500, 500, Floating}, // at the threshold stays floating
		{501, 500, Pinned},
		{600, 500, Pinned},
		{0, 0, Floating},
		{1, 0, Pinned},
	}
	for _, c := range cases {
		if got := EvaluatePin(c.scroll, c.anchor); got != c.want {
			t.Fatalf("EvaluatePin(%d, %d) = %v, want %v", c.scroll, c.anchor, got, c.want)
		}
	}
}

// Scenario: anchor at 500, scroll to 400 then 600. One transition, one
// notification.
func TestPinTransitionFiresOncePerCrossing(t *testing.T) {
	s := newFakeSurface()
	s.place(MarkerID, 500, 1)

	var fired []bool
	c := NewPinController(s, NewProbe(s), NewSync(func(p bool) { fired = append(fired, p) }, nil))

	if c.Evaluate(400) {
		t.Fatalf("scroll to 400 should not transition")
	}
	if c.State() != Floating || len(fired) != 0 {
		t.Fatalf("state %v, %d notifications, want floating and none", c.State(), len(fired))
	}

	if !c.Evaluate(600) {
		t.Fatalf("scroll to 600 should transition")
	}
	if c.State() != Pinned {
		t.Fatalf("state = %v, want pinned", c.State())
	}
	if len(fired) != 1 || !fired[0] {
		t.Fatalf("notifications = %v, want exactly one true", fired)
	}

	// Motion that stays past the threshold must not re-notify.
	c.Evaluate(700)
	c.Evaluate(900)
	if len(fired) != 1 {
		t.Fatalf("redundant notifications: %v", fired)
	}

	// Back below the threshold: exactly one unpin.
	if !c.Evaluate(400) {
		t.Fatalf("scroll back to 400 should transition")
	}
	if len(fired) != 2 || fired[1] {
		t.Fatalf("notifications = %v, want second false", fired)
	}
}

func TestPinSuppressesNotifyWhenHostAlreadyKnows(t *testing.T) {
	s := newFakeSurface()
	s.place(MarkerID, 500, 1)

	hostPinned := true
	var fired int
	sync := NewSync(func(bool) { fired++ }, func() (bool, bool) { return hostPinned, true })
	c := NewPinController(s, NewProbe(s), sync)

	c.Evaluate(600)
	if c.State() != Pinned {
		t.Fatalf("state = %v, want pinned", c.State())
	}
	if fired != 0 {
		t.Fatalf("host already knew pinned=true, got %d notifications", fired)
	}

	hostPinned = false
	c.Evaluate(400)
	if fired != 0 {
		t.Fatalf("host already knew pinned=false, got %d notifications", fired)
	}
}

func TestPinFallsBackToProbeSnapshotWhenMarkerGone(t *testing.T) {
	s := newFakeSurface()
	s.place(MarkerID, 500, 1)
	s.place(ContainerID, 480, 6)

	probe := NewProbe(s)
	probe.Measure()
	c := NewPinController(s, probe, NewSync(nil, nil))

	delete(s.elements, MarkerID)
	c.Evaluate(600)
	if c.State() != Pinned {
		t.Fatalf("expected pin from snapshot fallback, state = %v", c.State())
	}
}

func TestPinNoAnchorNoTransition(t *testing.T) {
	s := newFakeSurface()
	c := NewPinController(s, NewProbe(s), NewSync(nil, nil))
	if c.Evaluate(10_000) {
		t.Fatalf("no anchor and no snapshot should keep prior state")
	}
	if c.State() != Floating {
		t.Fatalf("state = %v, want floating", c.State())
	}
}

package navigator

import "testing"

// With a 100-row viewport the entry band spans rows 20–30 below the scroll
// offset: the middle left once the top 20% and bottom 70% are excluded.

func TestTrackerEntrySetsActive(t *testing.T) {
	s := newFakeSurface()
	s.place(ElementID(1), 25, 10)
	s.place(ElementID(2), 200, 10)

	tr := NewTracker(s, nil)
	tr.SetSections([]Section{{1, "Team"}, {2, "Docs"}})
	if tr.HandleCount() != 2 {
		t.Fatalf("handles = %d, want 2", tr.HandleCount())
	}

	tr.Observe()
	id, ok := tr.Active()
	if !ok || id != 1 {
		t.Fatalf("active = %d ok=%v, want 1", id, ok)
	}
}

func TestTrackerLastEnteredWins(t *testing.T) {
	s := newFakeSurface()
	s.place(ElementID(1), 25, 10)
	s.place(ElementID(2), 125, 10)

	tr := NewTracker(s, nil)
	tr.SetSections([]Section{{1, "Team"}, {2, "Docs"}})

	tr.Observe() // section 1 in band
	s.scroll = 100
	tr.Observe() // section 2 in band
	if id, _ := tr.Active(); id != 2 {
		t.Fatalf("active = %d, want 2 after later entry", id)
	}

	// Reverse arrival order: back up so section 1 enters again.
	s.scroll = 0
	tr.Observe()
	if id, _ := tr.Active(); id != 1 {
		t.Fatalf("active = %d, want 1 after reversed arrival", id)
	}
}

func TestTrackerActiveIsSticky(t *testing.T) {
	s := newFakeSurface()
	s.place(ElementID(1), 25, 10)

	tr := NewTracker(s, nil)
	tr.SetSections([]Section{{1, "Team"}})
	tr.Observe()

	// Scroll far past: the section leaves every band, the pointer stays.
	s.scroll = 5000
	tr.Observe()
	id, ok := tr.Active()
	if !ok || id != 1 {
		t.Fatalf("leave event reset active to %d ok=%v", id, ok)
	}
}

func TestTrackerEntryIsEdgeTriggered(t *testing.T) {
	s := newFakeSurface()
	s.place(ElementID(1), 25, 10)

	var entries int
	tr := NewTracker(s, func(int) { entries++ })
	tr.SetSections([]Section{{1, "Team"}})

	tr.Observe()
	tr.Observe()
	tr.Observe()
	if entries != 1 {
		t.Fatalf("entries = %d, want 1 while the section stays inside", entries)
	}

	s.scroll = 5000
	tr.Observe() // leaves
	s.scroll = 0
	tr.Observe() // re-enters
	if entries != 2 {
		t.Fatalf("entries = %d, want 2 after a leave and re-entry", entries)
	}
}

func TestTrackerSkipsMissingElements(t *testing.T) {
	s := newFakeSurface()
	s.place(ElementID(1), 25, 10)

	tr := NewTracker(s, nil)
	tr.SetSections([]Section{{1, "Team"}, {2, "Docs"}})
	if tr.HandleCount() != 1 {
		t.Fatalf("handles = %d, want 1 (section 2 has no element)", tr.HandleCount())
	}

	// A later list-change pass picks it up once the element exists.
	s.place(ElementID(2), 26, 10)
	tr.SetSections([]Section{{1, "Team"}, {2, "Docs"}})
	if tr.HandleCount() != 2 {
		t.Fatalf("handles = %d, want 2 after relist", tr.HandleCount())
	}
}

func TestTrackerSetSectionsDisposesOldHandles(t *testing.T) {
	s := newFakeSurface()
	s.place(ElementID(1), 25, 10)
	s.place(ElementID(2), 26, 10)

	var entered []int
	tr := NewTracker(s, func(id int) { entered = append(entered, id) })
	tr.SetSections([]Section{{1, "Team"}})
	tr.Observe()

	// Replacing the list must not leave a second handle for section 1:
	// its entry state resets with the new handle, so it fires once more,
	// not twice.
	tr.SetSections([]Section{{1, "Team"}, {2, "Docs"}})
	if tr.HandleCount() != 2 {
		t.Fatalf("handles = %d, want 2", tr.HandleCount())
	}
	entered = nil
	tr.Observe()
	if len(entered) != 2 {
		t.Fatalf("entries after relist = %v, want one per section", entered)
	}
}

func TestTrackerEmptyListCreatesNothing(t *testing.T) {
	s := newFakeSurface()
	tr := NewTracker(s, nil)
	tr.SetSections(nil)
	if tr.HandleCount() != 0 {
		t.Fatalf("handles = %d, want 0", tr.HandleCount())
	}
	tr.Observe() // must not panic or look anything up
	if _, ok := tr.Active(); ok {
		t.Fatalf("active set with no sections")
	}
}

func TestTrackerCloseStopsCallbacks(t *testing.T) {
	s := newFakeSurface()
	s.place(ElementID(1), 25, 10)

	var entries int
	tr := NewTracker(s, func(int) { entries++ })
	tr.SetSections([]Section{{1, "Team"}})
	tr.Close()
	tr.Observe()
	if entries != 0 {
		t.Fatalf("callback fired after Close")
	}
}

package navigator

// HoverIntents maps section ids to a transient hover affordance flag.
// Entries are ephemeral: selection clears the selected section's entry so
// an affordance can never stay stuck open across a programmatic scroll.
type HoverIntents struct {
	m map[int]bool
}

func NewHoverIntents() *HoverIntents {
	return &HoverIntents{m: make(map[int]bool)}
}

// Set is a pure state setter; it has no side effects beyond the map.
func (h *HoverIntents) Set(sectionID int, on bool) {
	if on {
		h.m[sectionID] = true
		return
	}
	delete(h.m, sectionID)
}

func (h *HoverIntents) Get(sectionID int) bool {
	return h.m[sectionID]
}

// Clear removes a single section's entry.
func (h *HoverIntents) Clear(sectionID int) {
	delete(h.m, sectionID)
}

// Reset drops every entry, used when the section list changes.
func (h *HoverIntents) Reset() {
	clear(h.m)
}

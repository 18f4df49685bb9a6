package navigator

import (
	"strconv"
	"strings"
)

// Section is one labeled entry in the navigator list. The slice order given
// to the engine defines list order; it carries no activity semantics.
type Section struct {
	ID    int
	Label string
}

const sectionIDPrefix = "section-"

// Well-known element ids resolved through a Surface.
const (
	// MarkerID is the hidden marker placed where the first section begins.
	// Its top offset is the pin threshold.
	MarkerID = "nav-anchor"
	// ContainerID is the navigator's own block in the scrolled content.
	ContainerID = "nav-container"
)

// ElementID derives the stable element id for a section.
func ElementID(id int) string {
	return sectionIDPrefix + strconv.Itoa(id)
}

// ParseElementID decodes a derived element id back to its numeric section id.
func ParseElementID(s string) (int, bool) {
	rest, ok := strings.CutPrefix(s, sectionIDPrefix)
	if !ok || rest == "" {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return id, true
}

package core

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/aabacada/navihive/navigator"
)

// JumpMode is the fuzzy section picker's input state.
type JumpMode struct {
	Active bool
	Query  string
}

func (j *JumpMode) open()  { j.Active = true; j.Query = "" }
func (j *JumpMode) close() { j.Active = false; j.Query = "" }

type jumpMatch struct {
	ID    int
	Label string
	Score float64
}

// rankSections orders sections by similarity to the query: substring hits
// first, then Levenshtein similarity over the lowercase label. An empty
// query keeps document order.
func rankSections(sections []navigator.Section, query string) []jumpMatch {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]jumpMatch, 0, len(sections))
	for _, s := range sections {
		label := strings.ToLower(s.Label)
		score := 0.0
		switch {
		case q == "":
			score = 1
		case strings.Contains(label, q):
			// earlier and tighter matches score higher
			score = 2 - float64(strings.Index(label, q))/float64(len(label)+1)
		default:
			maxlen := len(label)
			if len(q) > maxlen {
				maxlen = len(q)
			}
			score = 1 - float64(levenshtein.ComputeDistance(label, q))/float64(maxlen)
		}
		if q != "" && score < 0.3 {
			continue
		}
		out = append(out, jumpMatch{ID: s.ID, Label: s.Label, Score: score})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

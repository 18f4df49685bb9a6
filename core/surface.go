package core

import (
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/aabacada/navihive/navigator"
)

// docSurface adapts the viewport and the content layout to the engine's
// Surface. Smooth scroll requests arm the animator instead of moving the
// viewport directly; Update drains it one frame at a time.
type docSurface struct {
	vp     *viewport.Model
	layout *layout
	anim   scrollAnim
}

func newDocSurface(vp *viewport.Model) *docSurface {
	return &docSurface{vp: vp}
}

func (s *docSurface) setLayout(l *layout) { s.layout = l }

func (s *docSurface) Element(id string) (navigator.Rect, bool) {
	if s.layout == nil {
		return navigator.Rect{}, false
	}
	return s.layout.element(id)
}

func (s *docSurface) ScrollOffset() int   { return s.vp.YOffset }
func (s *docSurface) ViewportHeight() int { return s.vp.Height }

func (s *docSurface) ScrollTo(top int, smooth bool) {
	if !smooth {
		s.vp.SetYOffset(top)
		return
	}
	s.anim.start(top)
}

// scrollAnim eases the viewport toward a target offset. It is fire and
// forget: a new user scroll moves the viewport underneath it and the
// animation keeps converging on its target from wherever the offset is.
type scrollAnim struct {
	target int
	active bool
}

func (a *scrollAnim) start(target int) {
	a.target = target
	a.active = true
}

// step advances one frame, returning false once the target is reached.
func (a *scrollAnim) step(vp *viewport.Model) bool {
	if !a.active {
		return false
	}
	dist := a.target - vp.YOffset
	if dist == 0 {
		a.active = false
		return false
	}
	step := dist / 4
	if step == 0 {
		if dist > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	before := vp.YOffset
	vp.SetYOffset(vp.YOffset + step)
	if vp.YOffset == a.target || vp.YOffset == before {
		// reached, or clamped at the content edge
		a.active = false
	}
	return a.active
}

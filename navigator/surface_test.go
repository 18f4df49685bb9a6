package navigator

// fakeSurface is an in-memory Surface for engine tests. It records scroll
// requests and element lookups instead of doing anything.
type fakeSurface struct {
	elements map[string]Rect
	scroll   int
	height   int

	scrollCalls []int
	smoothCalls []bool
	lookups     int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{elements: make(map[string]Rect), height: 100}
}

func (s *fakeSurface) Element(id string) (Rect, bool) {
	s.lookups++
	r, ok := s.elements[id]
	return r, ok
}

func (s *fakeSurface) ScrollOffset() int   { return s.scroll }
func (s *fakeSurface) ViewportHeight() int { return s.height }

func (s *fakeSurface) ScrollTo(top int, smooth bool) {
	s.scrollCalls = append(s.scrollCalls, top)
	s.smoothCalls = append(s.smoothCalls, smooth)
}

// place registers a section element n rows tall at the given top.
func (s *fakeSurface) place(id string, top, height int) {
	s.elements[id] = Rect{Top: top, Height: height}
}

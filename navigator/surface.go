package navigator

// Rect is a document-relative bounding box. Top and Left are offsets from
// the start of the scrolled content, Height is the element's extent in rows.
type Rect struct {
	Top    int
	Left   int
	Height int
}

// Surface is the host's query surface for the scrolled content: element
// lookup by derived id, the current scroll position, and the ability to
// move it. All lookups report absence via the bool; the engine treats a
// missing element as a reason to skip, never as an error.
type Surface interface {
	// Element resolves an element's bounds by derived id.
	Element(id string) (Rect, bool)
	// ScrollOffset is the current vertical scroll offset of the content.
	ScrollOffset() int
	// ViewportHeight is the visible height of the scroll container.
	ViewportHeight() int
	// ScrollTo moves the scroll offset. A smooth scroll is fire-and-forget:
	// the engine never awaits or cancels it.
	ScrollTo(top int, smooth bool)
}

// Package navigator is the position/activity synchronization engine behind
// the section navigator.
//
// Allowed here:
// - geometry probing, pin-state transitions, per-section visibility tracking
// - the click-to-scroll protocol and hover-intent bookkeeping
// - the one-way pin notification edge toward a host
//
// Not allowed here:
// - rendering, styling, or any terminal I/O
// - knowledge of where section content comes from (a Surface is injected)
package navigator

// Package core contains the app model and state orchestration.
//
// Allowed here:
// - the Bubble Tea model, message contracts, key registry
// - the Surface wiring between the navigator engine and the viewport
// - scroll animation and jump-picker state machines
//
// Not allowed here:
// - low-level widget rendering primitives
// - document parsing or persistence
package core

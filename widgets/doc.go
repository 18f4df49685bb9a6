// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (nav bar chrome, line splicing,
//   ANSI-safe padding)
//
// Not allowed here:
// - key handling, scroll state, engine calls, or app policy
package widgets

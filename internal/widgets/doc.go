// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, grid canvas, popup overlay compositor)
//
// Not allowed here:
// - key handling, dashboard state, or store commands
package widgets

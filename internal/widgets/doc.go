// Package widgets contains the dashboard's render primitives.
//
// Allowed here:
// - stateless drawing helpers (cards, sidebar tree, revenue chart, popover panels)
// - composition helpers (stacks, overlay compositor, backdrop)
//
// Not allowed here:
// - key or mouse handling, view-state mutation, or persistence
package widgets

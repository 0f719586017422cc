// Package tui is the terminal front end of the admin dashboard.
//
// Allowed here:
// - key and mouse routing, focus, cursors, toasts and frame geometry
// - translating input into calls on viewstate units
//
// Not allowed here:
// - view-state rules (filtering, expansion, popover exclusivity, formatting)
// - persistence beyond the PreferenceStore handed in by the caller
package tui

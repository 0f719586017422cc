// Package viewstate holds the interactive state of the admin dashboard.
//
// Allowed here:
// - the state units (theme, navigation, search, popovers, reporting period, revenue formatting)
// - change notification between units and the derived views they feed
//
// Not allowed here:
// - rendering, key handling, terminal geometry
// - storage drivers (units depend on PreferenceStore, never on sqlite or files)
package viewstate

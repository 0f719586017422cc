package viewstate

import "slices"

// ChildLink is a navigation target nested under a menu group.
type ChildLink struct {
	Label string
}

// MenuItem is one static sidebar entry. Its expanded state lives in
// NavigationTree, keyed by Label.
type MenuItem struct {
	Label    string
	Icon     string
	Active   bool
	Children []ChildLink
}

// HasChildren reports whether the item is an expandable group.
func (m MenuItem) HasChildren() bool {
	return len(m.Children) > 0
}

func (m MenuItem) clone() MenuItem {
	m.Children = slices.Clone(m.Children)
	return m
}

// StatCard is a static metric tile.
type StatCard struct {
	Title      string
	Value      int64
	Icon       string
	Emphasized bool
}

// RevenuePoint is one month of revenue in whole currency units.
type RevenuePoint struct {
	Month  string
	Amount int64
}

// Months lists the calendar month labels in order.
var Months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

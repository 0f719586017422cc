package viewstate

// NavRow is one visible line of the sidebar: a top-level item, or a child
// link of an expanded group.
type NavRow struct {
	Label    string
	Icon     string
	Parent   string
	Group    bool
	Expanded bool
	Active   bool
}

// IsChild reports whether the row is a link nested under a group.
func (r NavRow) IsChild() bool {
	return r.Parent != ""
}

// NavigationTree tracks which sidebar groups are expanded. The menu itself
// never changes after construction.
type NavigationTree struct {
	items    []MenuItem
	index    map[string]int
	expanded map[string]bool
	notifier
}

// NewNavigationTree copies items and expands the listed labels. Labels of
// childless items are ignored in initiallyExpanded, since those items are
// never expandable.
func NewNavigationTree(items []MenuItem, initiallyExpanded []string) *NavigationTree {
	t := &NavigationTree{
		items:    make([]MenuItem, len(items)),
		index:    make(map[string]int, len(items)),
		expanded: make(map[string]bool),
	}
	for i, it := range items {
		t.items[i] = it.clone()
		t.index[it.Label] = i
		if it.HasChildren() {
			t.expanded[it.Label] = false
		}
	}
	for _, label := range initiallyExpanded {
		if _, ok := t.expanded[label]; ok {
			t.expanded[label] = true
		}
	}
	return t
}

// Items returns a copy of the menu.
func (t *NavigationTree) Items() []MenuItem {
	out := make([]MenuItem, len(t.items))
	for i, it := range t.items {
		out[i] = it.clone()
	}
	return out
}

// Item looks up a top-level entry by label.
func (t *NavigationTree) Item(label string) (MenuItem, bool) {
	i, ok := t.index[label]
	if !ok {
		return MenuItem{}, false
	}
	return t.items[i].clone(), true
}

// IsExpanded is false for leaves and unknown labels.
func (t *NavigationTree) IsExpanded(label string) bool {
	return t.expanded[label]
}

// Toggle flips a group's expanded state. Childless or unknown labels are
// ignored.
func (t *NavigationTree) Toggle(label string) {
	cur, ok := t.expanded[label]
	if !ok {
		return
	}
	t.expanded[label] = !cur
	t.notify()
}

// Active returns the item marked active in the configuration.
func (t *NavigationTree) Active() (MenuItem, bool) {
	for _, it := range t.items {
		if it.Active {
			return it.clone(), true
		}
	}
	return MenuItem{}, false
}

// Rows flattens the menu into what the sidebar shows right now.
func (t *NavigationTree) Rows() []NavRow {
	rows := make([]NavRow, 0, len(t.items)*2)
	for _, it := range t.items {
		open := t.expanded[it.Label]
		rows = append(rows, NavRow{
			Label:    it.Label,
			Icon:     it.Icon,
			Group:    it.HasChildren(),
			Expanded: open,
			Active:   it.Active,
		})
		if !open {
			continue
		}
		for _, c := range it.Children {
			rows = append(rows, NavRow{Label: c.Label, Parent: it.Label})
		}
	}
	return rows
}

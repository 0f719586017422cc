package viewstate

type PopoverID string

const (
	SidebarDrawer PopoverID = "sidebar-drawer"
	ProfileMenu   PopoverID = "profile-menu"
	PeriodPicker  PopoverID = "period-picker"
)

// Popover is an open/closed flag for one dismissible overlay.
type Popover struct {
	id   PopoverID
	open bool
	notifier
}

func NewPopover(id PopoverID) *Popover {
	return &Popover{id: id}
}

func (p *Popover) ID() PopoverID { return p.id }

func (p *Popover) IsOpen() bool { return p.open }

func (p *Popover) Open() { p.set(true) }

func (p *Popover) Close() { p.set(false) }

func (p *Popover) Toggle() { p.set(!p.open) }

func (p *Popover) set(open bool) {
	if p.open == open {
		return
	}
	p.open = open
	p.notify()
}

// TransientMenus groups the dashboard's popovers. They are independent:
// opening one leaves the others as they are.
type TransientMenus struct {
	Drawer  *Popover
	Profile *Popover
	Period  *Popover
}

func NewTransientMenus() *TransientMenus {
	return &TransientMenus{
		Drawer:  NewPopover(SidebarDrawer),
		Profile: NewPopover(ProfileMenu),
		Period:  NewPopover(PeriodPicker),
	}
}

func (m *TransientMenus) All() []*Popover {
	return []*Popover{m.Drawer, m.Profile, m.Period}
}

// AnyOpen reports whether at least one popover is showing.
func (m *TransientMenus) AnyOpen() bool {
	for _, p := range m.All() {
		if p.IsOpen() {
			return true
		}
	}
	return false
}

// CloseAll closes every open popover and returns how many were open.
func (m *TransientMenus) CloseAll() int {
	n := 0
	for _, p := range m.All() {
		if p.IsOpen() {
			p.Close()
			n++
		}
	}
	return n
}

// Subscribe runs fn whenever any of the popovers changes.
func (m *TransientMenus) Subscribe(fn func()) (cancel func()) {
	cancels := make([]func(), 0, 3)
	for _, p := range m.All() {
		cancels = append(cancels, p.Subscribe(fn))
	}
	return func() {
		for _, c := range cancels {
			c()
		}
	}
}

type Point struct {
	X, Y int
}

// Rect is a cell region; W and H are exclusive extents.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

type outsideRegistration struct {
	popover *Popover
	bounds  func() []Rect
}

// OutsideListener closes open popovers when an interaction lands outside
// their bounds. Bounds should cover the popover panel and its anchor, so a
// press on the anchor is left to the anchor's own toggle.
type OutsideListener struct {
	regs []outsideRegistration
}

func (l *OutsideListener) Register(p *Popover, bounds func() []Rect) {
	if p == nil || bounds == nil {
		return
	}
	l.regs = append(l.regs, outsideRegistration{popover: p, bounds: bounds})
}

// Dispatch reports an interaction at pt and returns the popovers it closed.
func (l *OutsideListener) Dispatch(pt Point) []PopoverID {
	var closed []PopoverID
	for _, r := range l.regs {
		if !r.popover.IsOpen() {
			continue
		}
		inside := false
		for _, b := range r.bounds() {
			if b.Contains(pt) {
				inside = true
				break
			}
		}
		if !inside {
			r.popover.Close()
			closed = append(closed, r.popover.ID())
		}
	}
	return closed
}

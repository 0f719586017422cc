package layout

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/kodex/kodexdash/internal/viewstate"
)

//go:embed default.toml
var defaultLayoutTOML []byte

type menuEntry struct {
	Label    string   `toml:"label"`
	Icon     string   `toml:"icon"`
	Active   bool     `toml:"active"`
	Children []string `toml:"children"`
}

type cardEntry struct {
	Title      string `toml:"title"`
	Value      int64  `toml:"value"`
	Icon       string `toml:"icon"`
	Emphasized bool   `toml:"emphasized"`
}

type revenueEntry struct {
	Month  string `toml:"month"`
	Amount int64  `toml:"amount"`
}

// layoutFile is the top-level TOML structure.
type layoutFile struct {
	Brand         string         `toml:"brand"`
	Greeting      string         `toml:"greeting"`
	Subtitle      string         `toml:"subtitle"`
	Currency      string         `toml:"currency"`
	Notifications int            `toml:"notifications"`
	Expanded      []string       `toml:"expanded"`
	Periods       []string       `toml:"periods"`
	Account       []string       `toml:"account"`
	Profile       []string       `toml:"profile"`
	Menu          []menuEntry    `toml:"menu"`
	Cards         []cardEntry    `toml:"card"`
	Revenue       []revenueEntry `toml:"revenue"`
}

// Layout is the immutable content of the dashboard: the menu, the cards, the
// revenue series and the header copy.
type Layout struct {
	Brand         string
	Greeting      string
	Subtitle      string
	Currency      string
	Notifications int
	Expanded      []string
	Periods       []viewstate.ReportingPeriod
	Account       []string
	Profile       []string
	Menu          []viewstate.MenuItem
	Cards         []viewstate.StatCard
	Revenue       []viewstate.RevenuePoint
}

// Default returns the built-in layout.
func Default() Layout {
	l, err := Parse(defaultLayoutTOML)
	if err != nil {
		panic(fmt.Sprintf("embedded layout: %v", err))
	}
	return l
}

// Load reads a layout file. An empty path yields the built-in layout.
func Load(path string) (Layout, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	l, err := Parse(data)
	if err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", path, err)
	}
	return l, nil
}

// Parse decodes and validates a layout document.
func Parse(data []byte) (Layout, error) {
	var f layoutFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return Layout{}, fmt.Errorf("decode: %w", err)
	}
	l := f.toLayout()
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

func (f layoutFile) toLayout() Layout {
	l := Layout{
		Brand:         f.Brand,
		Greeting:      f.Greeting,
		Subtitle:      f.Subtitle,
		Currency:      strings.ToUpper(strings.TrimSpace(f.Currency)),
		Notifications: f.Notifications,
		Expanded:      f.Expanded,
		Account:       f.Account,
		Profile:       f.Profile,
	}
	if l.Currency == "" {
		l.Currency = viewstate.DefaultCurrency
	}
	for _, p := range f.Periods {
		l.Periods = append(l.Periods, viewstate.ReportingPeriod(p))
	}
	if len(l.Periods) == 0 {
		l.Periods = append(l.Periods, viewstate.DefaultPeriods...)
	}
	for _, m := range f.Menu {
		item := viewstate.MenuItem{Label: m.Label, Icon: m.Icon, Active: m.Active}
		for _, c := range m.Children {
			item.Children = append(item.Children, viewstate.ChildLink{Label: c})
		}
		l.Menu = append(l.Menu, item)
	}
	for _, c := range f.Cards {
		l.Cards = append(l.Cards, viewstate.StatCard{Title: c.Title, Value: c.Value, Icon: c.Icon, Emphasized: c.Emphasized})
	}
	for _, r := range f.Revenue {
		l.Revenue = append(l.Revenue, viewstate.RevenuePoint{Month: r.Month, Amount: r.Amount})
	}
	return l
}

// Validate checks the authoring rules the view state relies on: unique
// menu labels, at most one active item, unique card titles, a full
// Jan..Dec revenue series with no negative amounts and a unique, non-empty
// period list.
func (l Layout) Validate() error {
	seen := map[string]bool{}
	active := 0
	for _, m := range l.Menu {
		if strings.TrimSpace(m.Label) == "" {
			return fmt.Errorf("menu item with empty label")
		}
		if seen[m.Label] {
			return fmt.Errorf("duplicate menu label %q", m.Label)
		}
		seen[m.Label] = true
		if m.Active {
			active++
		}
	}
	if active > 1 {
		return fmt.Errorf("%d active menu items, want at most one", active)
	}
	for _, label := range l.Expanded {
		if !seen[label] {
			return fmt.Errorf("expanded label %q is not a menu item", label)
		}
	}

	titles := map[string]bool{}
	for _, c := range l.Cards {
		if titles[c.Title] {
			return fmt.Errorf("duplicate card title %q", c.Title)
		}
		titles[c.Title] = true
	}

	if len(l.Revenue) != len(viewstate.Months) {
		return fmt.Errorf("revenue has %d points, want %d", len(l.Revenue), len(viewstate.Months))
	}
	for i, p := range l.Revenue {
		if p.Month != viewstate.Months[i] {
			return fmt.Errorf("revenue[%d] month %q, want %q", i, p.Month, viewstate.Months[i])
		}
		if p.Amount < 0 {
			return fmt.Errorf("revenue for %s is negative", p.Month)
		}
	}

	periods := map[viewstate.ReportingPeriod]bool{}
	for _, p := range l.Periods {
		if p == "" || periods[p] {
			return fmt.Errorf("invalid or duplicate period %q", p)
		}
		periods[p] = true
	}
	return nil
}

// Dashboard converts the layout into the view-state configuration.
func (l Layout) Dashboard() viewstate.Config {
	return viewstate.Config{
		Menu:          l.Menu,
		Expanded:      l.Expanded,
		Cards:         l.Cards,
		Revenue:       l.Revenue,
		Periods:       l.Periods,
		Currency:      l.Currency,
		Notifications: l.Notifications,
	}
}

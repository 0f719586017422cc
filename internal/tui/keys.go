package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

// KeyRegistry maps key names to actions per scope. Lookups fall back to
// the global scope.
type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal       = "global"
	scopeSidebar      = "sidebar"
	scopeSearch       = "search"
	scopeChart        = "chart"
	scopeProfileMenu  = "profile_menu"
	scopePeriodPicker = "period_picker"
)

const (
	actionQuit         Action = "quit"
	actionNextFocus    Action = "next_focus"
	actionToggleTheme  Action = "toggle_theme"
	actionProfileMenu  Action = "profile_menu"
	actionPeriodPicker Action = "period_picker"
	actionToggleDrawer Action = "toggle_drawer"
	actionFocusSearch  Action = "focus_search"
	actionCloseAll     Action = "close_all"
	actionNavigate     Action = "navigate"
	actionToggleGroup  Action = "toggle_group"
	actionMonth        Action = "month"
	actionSelect       Action = "select"
	actionClose        Action = "close"
	actionSubmitSearch Action = "submit_search"
	actionLeaveSearch  Action = "leave_search"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	reg(scopeGlobal, actionQuit, []string{"q", "ctrl+c"}, "quit")
	reg(scopeGlobal, actionNextFocus, []string{"tab"}, "focus")
	reg(scopeGlobal, actionFocusSearch, []string{"/"}, "search")
	reg(scopeGlobal, actionToggleTheme, []string{"t"}, "theme")
	reg(scopeGlobal, actionProfileMenu, []string{"p"}, "profile")
	reg(scopeGlobal, actionPeriodPicker, []string{"r"}, "period")
	reg(scopeGlobal, actionToggleDrawer, []string{"ctrl+b"}, "menu")
	reg(scopeGlobal, actionCloseAll, []string{"esc"}, "close")

	reg(scopeSidebar, actionNavigate, []string{"j/k", "j", "k", "up", "down"}, "navigate")
	reg(scopeSidebar, actionToggleGroup, []string{"enter", "space"}, "expand")

	reg(scopeChart, actionMonth, []string{"h/l", "h", "left", "l", "right"}, "month")

	// The search input owns every printable key.
	reg(scopeSearch, actionSubmitSearch, []string{"enter"}, "search")
	reg(scopeSearch, actionLeaveSearch, []string{"esc"}, "done")
	reg(scopeSearch, actionNextFocus, []string{"tab"}, "focus")
	reg(scopeSearch, actionQuit, []string{"ctrl+c"}, "quit")

	reg(scopeProfileMenu, actionNavigate, []string{"j/k", "j", "k", "up", "down"}, "navigate")
	reg(scopeProfileMenu, actionSelect, []string{"enter"}, "open")
	reg(scopeProfileMenu, actionClose, []string{"esc", "p"}, "close")

	reg(scopePeriodPicker, actionNavigate, []string{"j/k", "j", "k", "up", "down"}, "navigate")
	reg(scopePeriodPicker, actionSelect, []string{"enter"}, "select")
	reg(scopePeriodPicker, actionClose, []string{"esc", "r"}, "close")

	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil || len(b.Keys) == 0 {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" {
			continue
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 || r.scopeHasAnyKey(scope, normKeys) {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup resolves keyName in scope, then in the global scope. The search
// scope does not fall back: printable keys belong to the input there.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal && scope != scopeSearch {
		return r.lookupInScope(keyName, scopeGlobal)
	}
	return nil
}

// HelpBindings returns the footer entries for scope followed by the global
// ones it does not shadow.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	if scope != scopeGlobal && scope != scopeSearch {
		for _, g := range r.BindingsForScope(scopeGlobal) {
			if !r.scopeHasAnyKey(scope, g.Keys) {
				items = append(items, g)
			}
		}
	}
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		// Single runes keep their case so "G" and "g" stay distinct.
		return trimmed
	}
	s := strings.ToLower(strings.ReplaceAll(trimmed, " ", ""))
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	return s
}

func isUpKey(k string) bool {
	return k == "k" || k == "up"
}

func isLeftKey(k string) bool {
	return k == "h" || k == "left"
}

package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/kodex/kodexdash/internal/viewstate"
)

// SidebarNavTop is the line of the first navigation row: the brand sits on
// line 0, followed by a blank line.
const SidebarNavTop = 2

// Sidebar renders the brand, the navigation tree and the account section.
// Each NavRow occupies exactly one line, in order, starting at
// SidebarNavTop.
type Sidebar struct {
	Brand   string
	Rows    []viewstate.NavRow
	Cursor  int
	Focused bool
	Account []string
	Palette Palette
	// CloseGlyph, when set, is drawn at the right end of the brand line.
	CloseGlyph string
}

func (s Sidebar) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	brand := lipgloss.NewStyle().Foreground(s.Palette.Accent).Bold(true).Render(s.Brand)
	if s.CloseGlyph != "" {
		gap := max(1, width-lipgloss.Width(s.Brand)-lipgloss.Width(s.CloseGlyph)-1)
		brand += strings.Repeat(" ", gap) + lipgloss.NewStyle().Foreground(s.Palette.Subtext).Render(s.CloseGlyph)
	}

	nav := tree.New().
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(lipgloss.NewStyle().Foreground(s.Palette.Border).PaddingRight(1))
	var group *tree.Tree
	for i, r := range s.Rows {
		label := s.rowLabel(i, r)
		if r.IsChild() {
			if group != nil {
				group.Child(label)
			}
			continue
		}
		if r.Group && r.Expanded {
			group = tree.Root(label).
				Enumerator(tree.RoundedEnumerator).
				EnumeratorStyle(lipgloss.NewStyle().Foreground(s.Palette.Border).PaddingRight(1))
			nav.Child(group)
			continue
		}
		group = nil
		nav.Child(label)
	}

	lines := []string{brand, "", nav.String(), ""}
	if len(s.Account) > 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(s.Palette.Muted).Render("Account"))
		for i, a := range s.Account {
			enum := "├ "
			if i == len(s.Account)-1 {
				enum = "╰ "
			}
			lines = append(lines, lipgloss.NewStyle().Foreground(s.Palette.Border).Render(enum)+
				lipgloss.NewStyle().Foreground(s.Palette.Subtext).Render(a))
		}
	}
	return Fit(strings.Join(lines, "\n"), width, height)
}

func (s Sidebar) rowLabel(i int, r viewstate.NavRow) string {
	text := r.Label
	if r.Icon != "" {
		text = r.Icon + " " + text
	}
	if r.Group {
		if r.Expanded {
			text += " ▾"
		} else {
			text += " ▸"
		}
	}
	style := lipgloss.NewStyle().Foreground(s.Palette.Text)
	switch {
	case r.Active:
		style = style.Foreground(s.Palette.Accent).Bold(true)
	case r.IsChild():
		style = style.Foreground(s.Palette.Subtext)
	}
	if s.Focused && i == s.Cursor {
		style = style.Foreground(s.Palette.Base).Background(s.Palette.Focus)
	}
	return style.Render(text)
}

// AccountTop is the line of the first account entry for a sidebar showing
// rows navigation rows.
func AccountTop(rows int) int {
	return SidebarNavTop + rows + 2
}

// SidebarHit resolves a line inside the sidebar to a navigation row or an
// account entry index.
func SidebarHit(line, rows, account int) (row int, acct int, ok bool) {
	if line >= SidebarNavTop && line < SidebarNavTop+rows {
		return line - SidebarNavTop, -1, true
	}
	top := AccountTop(rows)
	if line >= top && line < top+account {
		return -1, line - top, true
	}
	return -1, -1, false
}

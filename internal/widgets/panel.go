package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MenuPanel is a bordered popover list with one highlighted entry.
type MenuPanel struct {
	Items    []string
	Cursor   int
	Selected int
	Palette  Palette
}

// Render draws the panel at its natural size; width is the inner width
// and values below the longest item are raised to fit it.
func (m MenuPanel) Render(width int) string {
	for _, it := range m.Items {
		width = max(width, lipgloss.Width(it)+2)
	}
	cursor := lipgloss.NewStyle().Foreground(m.Palette.Base).Background(m.Palette.Focus).Bold(true)
	selected := lipgloss.NewStyle().Foreground(m.Palette.Accent)
	plain := lipgloss.NewStyle().Foreground(m.Palette.Text)
	lines := make([]string, len(m.Items))
	for i, it := range m.Items {
		mark := "  "
		if i == m.Selected {
			mark = "✓ "
		}
		text := PadRight(mark+it, width)
		switch {
		case i == m.Cursor:
			lines[i] = cursor.Render(text)
		case i == m.Selected:
			lines[i] = selected.Render(text)
		default:
			lines[i] = plain.Render(text)
		}
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Palette.Border).
		Background(m.Palette.Mantle).
		Render(strings.Join(lines, "\n"))
}

// MenuItemAt maps a row inside a rendered panel (0 is the top border) to
// an item index.
func MenuItemAt(row, count int) (int, bool) {
	i := row - 1
	if i < 0 || i >= count {
		return 0, false
	}
	return i, true
}

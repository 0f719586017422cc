package widgets

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/kodex/kodexdash/internal/viewstate"
)

// CardHeight is the rendered height of a stat card, borders included.
const CardHeight = 4

// Card draws one stat tile. Emphasized cards get the accent border.
type Card struct {
	Card    viewstate.StatCard
	Palette Palette
}

func (c Card) Render(width, height int) string {
	if width <= 2 || height <= 0 {
		return ""
	}
	border := c.Palette.Border
	if c.Card.Emphasized {
		border = c.Palette.Accent
	}
	title := lipgloss.NewStyle().Foreground(c.Palette.Subtext).Render(c.Card.Icon + " " + c.Card.Title)
	value := lipgloss.NewStyle().Foreground(c.Palette.Text).Bold(true).Render(strconv.FormatInt(c.Card.Value, 10))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width - 2).
		MaxHeight(min(height, CardHeight))
	return box.Render(PadRight(title, width-4) + "\n" + value)
}

// CardRow lays cards out in one row with a single-column gap.
func CardRow(cards []viewstate.StatCard, p Palette) HStack {
	row := HStack{Gap: 1}
	for _, c := range cards {
		row.Widgets = append(row.Widgets, Card{Card: c, Palette: p})
	}
	return row
}

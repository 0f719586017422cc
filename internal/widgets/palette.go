package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kodex/kodexdash/internal/viewstate"
)

// Palette is the set of semantic colors a theme mode renders with.
type Palette struct {
	Base    lipgloss.Color
	Mantle  lipgloss.Color
	Surface lipgloss.Color
	Border  lipgloss.Color
	Muted   lipgloss.Color
	Subtext lipgloss.Color
	Text    lipgloss.Color
	Accent  lipgloss.Color
	Focus   lipgloss.Color
	Line    lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// Catppuccin Mocha.
var DarkPalette = Palette{
	Base:    "#1e1e2e",
	Mantle:  "#181825",
	Surface: "#313244",
	Border:  "#585b70",
	Muted:   "#7f849c",
	Subtext: "#a6adc8",
	Text:    "#cdd6f4",
	Accent:  "#f5c2e7",
	Focus:   "#b4befe",
	Line:    "#fab387",
	Success: "#a6e3a1",
	Warning: "#f9e2af",
	Error:   "#f38ba8",
}

// Catppuccin Latte.
var LightPalette = Palette{
	Base:    "#eff1f5",
	Mantle:  "#e6e9ef",
	Surface: "#ccd0da",
	Border:  "#acb0be",
	Muted:   "#8c8fa1",
	Subtext: "#6c6f85",
	Text:    "#4c4f69",
	Accent:  "#ea76cb",
	Focus:   "#7287fd",
	Line:    "#fe640b",
	Success: "#40a02b",
	Warning: "#df8e1d",
	Error:   "#d20f39",
}

func PaletteFor(mode viewstate.ThemeMode) Palette {
	if mode == viewstate.Dark {
		return DarkPalette
	}
	return LightPalette
}

func (p Palette) Colors() []lipgloss.Color {
	return []lipgloss.Color{
		p.Base, p.Mantle, p.Surface, p.Border, p.Muted, p.Subtext, p.Text,
		p.Accent, p.Focus, p.Line, p.Success, p.Warning, p.Error,
	}
}

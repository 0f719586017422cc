package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/kodex/kodexdash/internal/widgets"
)

// styles is rebuilt whenever the theme mode changes.
type styles struct {
	palette widgets.Palette

	rule      lipgloss.Style
	greeting  lipgloss.Style
	subtitle  lipgloss.Style
	section   lipgloss.Style
	prompt    lipgloss.Style
	control   lipgloss.Style
	active    lipgloss.Style
	badge     lipgloss.Style
	muted     lipgloss.Style
	hint      lipgloss.Style
	separator lipgloss.Style
	backdrop  lipgloss.Style
	drawer    lipgloss.Style
	status    lipgloss.Style
	footer    lipgloss.Style
}

func newStyles(p widgets.Palette) styles {
	return styles{
		palette:   p,
		rule:      lipgloss.NewStyle().Foreground(p.Surface),
		greeting:  lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		subtitle:  lipgloss.NewStyle().Foreground(p.Subtext),
		section:   lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		prompt:    lipgloss.NewStyle().Foreground(p.Muted),
		control:   lipgloss.NewStyle().Foreground(p.Subtext),
		active:    lipgloss.NewStyle().Foreground(p.Focus).Bold(true),
		badge:     lipgloss.NewStyle().Foreground(p.Base).Background(p.Error).Bold(true),
		muted:     lipgloss.NewStyle().Foreground(p.Muted),
		hint:      lipgloss.NewStyle().Foreground(p.Warning),
		separator: lipgloss.NewStyle().Foreground(p.Surface),
		backdrop:  lipgloss.NewStyle().Foreground(p.Surface).Faint(true),
		drawer:    lipgloss.NewStyle().Background(p.Mantle),
		status:    lipgloss.NewStyle().Foreground(p.Success),
		footer:    lipgloss.NewStyle().Foreground(p.Subtext).Background(p.Mantle),
	}
}

func (s styles) helpStyles() help.Styles {
	key := lipgloss.NewStyle().Foreground(s.palette.Accent).Background(s.palette.Mantle)
	desc := lipgloss.NewStyle().Foreground(s.palette.Subtext).Background(s.palette.Mantle)
	sep := lipgloss.NewStyle().Foreground(s.palette.Border).Background(s.palette.Mantle)
	return help.Styles{
		ShortKey:       key,
		ShortDesc:      desc,
		ShortSeparator: sep,
		Ellipsis:       sep,
		FullKey:        key,
		FullDesc:       desc,
		FullSeparator:  sep,
	}
}

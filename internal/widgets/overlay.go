package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay composites panel on top of base with its top-left corner at
// cell (x, y). Rows of the panel that fall outside base are dropped.
func Overlay(base, panel string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")
	panelLines := strings.Split(panel, "\n")
	panelWidth := maxLineWidth(panelLines)
	x = max(0, x)
	for i, line := range panelLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		target := PadRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if lw := ansi.StringWidth(left); lw < x {
			left += strings.Repeat(" ", x-lw)
		}
		segment := PadRight(line, panelWidth)
		right := ansi.TruncateLeft(target, x+panelWidth, "")
		baseLines[row] = PadRight(left+segment+right, width)
	}
	return strings.Join(baseLines, "\n")
}

// Backdrop strips styling from base and renders every line in style, the
// dimmed layer drawn behind a modal drawer.
func Backdrop(base string, style lipgloss.Style) string {
	lines := strings.Split(base, "\n")
	for i, line := range lines {
		lines[i] = style.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}

// Size reports the cell width and line count of a rendered block.
func Size(s string) (width, height int) {
	lines := strings.Split(s, "\n")
	return maxLineWidth(lines), len(lines)
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		m = max(m, ansi.StringWidth(line))
	}
	return m
}

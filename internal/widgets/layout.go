package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// HStack lays widgets side by side, splitting the width by Ratios (equal
// when Ratios does not match the widget count) with Gap blank columns
// between neighbours.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	widths := h.Widths(width)
	rendered := make([][]string, len(h.Widgets))
	maxLines := 0
	for i, w := range h.Widgets {
		part := strings.Split(w.Render(max(1, widths[i]), height), "\n")
		rendered[i] = part
		maxLines = max(maxLines, len(part))
	}
	gap := strings.Repeat(" ", h.Gap)
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			if line < len(rendered[i]) {
				cols[i] = PadRight(rendered[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, gap))
	}
	return strings.Join(out, "\n")
}

// Widths returns the column width each widget gets at the given total.
func (h HStack) Widths(width int) []int {
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	return splitWidths(max(1, width-gapTotal), len(h.Widgets), h.Ratios)
}

func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	if len(ratios) != n {
		for i := range out {
			out[i] = total / n
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		sum += math.Max(r, 0)
	}
	if sum == 0 {
		return splitWidths(total, n, nil)
	}
	used := 0
	for i := range out {
		out[i] = int(math.Floor(math.Max(ratios[i], 0) / sum * float64(total)))
		used += out[i]
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

// PadRight truncates or pads s to exactly width cells.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// Fit pads s to a width x height block, cutting extra lines and columns.
func Fit(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = PadRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

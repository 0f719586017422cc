package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestOverlayPlacesPanelWithoutDroppingBase(t *testing.T) {
	base := strings.Join([]string{
		"row-0..............",
		"row-1..............",
		"row-2..............",
		"row-3..............",
	}, "\n")
	out := Overlay(base, "XX\nYY", 6, 1, 19)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want 4", len(lines))
	}
	if lines[0] != "row-0.............." || lines[3] != "row-3.............." {
		t.Fatalf("untouched rows changed: %q", lines)
	}
	if lines[1] != "row-1.XX..........." {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if lines[2] != "row-2.YY..........." {
		t.Fatalf("row 2 = %q", lines[2])
	}
}

func TestOverlayClipsRowsOutsideBase(t *testing.T) {
	out := Overlay("ab\ncd", "1\n2\n3", 0, 1, 2)
	if out != "ab\n1d" {
		t.Fatalf("Overlay = %q", out)
	}
}

func TestBackdropStripsStyles(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello")
	out := Backdrop(styled+"\nworld", lipgloss.NewStyle())
	if ansi.Strip(out) != "hello\nworld" {
		t.Fatalf("Backdrop = %q", ansi.Strip(out))
	}
}

func TestSize(t *testing.T) {
	w, h := Size("abc\nde\n")
	if w != 3 || h != 3 {
		t.Fatalf("Size = %d,%d", w, h)
	}
}

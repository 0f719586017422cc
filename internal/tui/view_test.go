package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/kodex/kodexdash/internal/widgets"
)

func TestViewFillsTerminal(t *testing.T) {
	for _, size := range [][2]int{{120, 40}, {80, 30}} {
		m, _ := newTestModel(t, size[0], size[1])
		lines := viewLines(m)
		if len(lines) != size[1] {
			t.Fatalf("%dx%d: lines = %d", size[0], size[1], len(lines))
		}
		for i, line := range lines {
			if w := ansi.StringWidth(line); w > size[0] {
				t.Fatalf("%dx%d: line %d is %d cells wide", size[0], size[1], i, w)
			}
		}
	}
}

func TestWideViewContent(t *testing.T) {
	m, _ := newTestModel(t, 120, 40)
	out := plainView(m)
	for _, want := range []string{
		"KODEX",
		"Welcome back, Admin",
		"You're logged in to the Kodex Control Center.",
		"Total students",
		"Sign-ups This Month",
		"Revenue",
		"[This Year ▾]",
		"⚑ 3",
		profileLabel,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHeaderControlsSitAtTheirRects(t *testing.T) {
	m, _ := newTestModel(t, 120, 40)
	g := m.geometry()
	header := viewLines(m)[0]
	at := func(r int) string { return cut(header, r, r+1) }
	if at(g.profileAnchor.X) != "◍" {
		t.Fatalf("profile glyph at %d = %q in %q", g.profileAnchor.X, at(g.profileAnchor.X), header)
	}
	if at(g.bell.X) != "⚑" {
		t.Fatalf("bell at %d = %q", g.bell.X, at(g.bell.X))
	}
	if at(g.theme.X) != "☀" {
		t.Fatalf("theme at %d = %q", g.theme.X, at(g.theme.X))
	}
	if at(g.search.X) != "⌕" {
		t.Fatalf("search at %d = %q", g.search.X, at(g.search.X))
	}

	revenue := viewLines(m)[g.revenueY]
	if got := cut(revenue, g.periodAnchor.X, g.periodAnchor.X+1); got != "[" {
		t.Fatalf("period anchor at %d = %q in %q", g.periodAnchor.X, got, revenue)
	}
}

func TestEmptySearchShowsHint(t *testing.T) {
	m, _ := newTestModel(t, 120, 40)
	press(m, runes("/"), runes("totl corses"))
	out := plainView(m)
	if !strings.Contains(out, `No cards match "totl corses".`) {
		t.Fatal("missing empty-state message")
	}
	if !strings.Contains(out, `Did you mean "Total courses"?`) {
		t.Fatalf("missing hint:\n%s", out)
	}
	if g := m.geometry(); g.cardsH != 2 {
		t.Fatalf("cards block = %d lines, want 2", g.cardsH)
	}
}

func TestProfilePanelRenderedAtGeometry(t *testing.T) {
	m, _ := newTestModel(t, 120, 40)
	press(m, runes("p"))
	g := m.geometry()
	lines := viewLines(m)
	for i, item := range m.layout.Profile {
		row := lines[g.profilePanel.Y+1+i]
		if !strings.Contains(cut(row, g.profilePanel.X, g.profilePanel.X+g.profilePanel.W), item) {
			t.Fatalf("row %d = %q, want %q inside the panel", i, row, item)
		}
	}
}

func TestSingleRowOfCards(t *testing.T) {
	m, _ := newTestModel(t, 120, 40)
	press(m, runes("/"), runes("total s"))
	top, rest := m.dash.CardRows()
	if len(top) != 1 || len(rest) != 0 {
		t.Fatalf("rows = %d/%d", len(top), len(rest))
	}
	if g := m.geometry(); g.cardsH != widgets.CardHeight {
		t.Fatalf("cards block = %d lines", g.cardsH)
	}
}

func cut(s string, left, right int) string {
	return ansi.Truncate(ansi.TruncateLeft(s, left, ""), right-left, "")
}

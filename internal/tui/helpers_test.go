package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/kodex/kodexdash/internal/layout"
	"github.com/kodex/kodexdash/internal/viewstate"
)

type memStore struct {
	values map[string]string
}

func newMemStore() *memStore {
	return &memStore{values: map[string]string{}}
}

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	s.values[key] = value
	return nil
}

func newTestModel(t *testing.T, width, height int) (*Model, *memStore) {
	t.Helper()
	store := newMemStore()
	m := New(context.Background(), Options{Layout: layout.Default(), Store: store})
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m, store
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func click(m *Model, x, y int) tea.Cmd {
	_, cmd := m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return cmd
}

func clickRect(m *Model, r viewstate.Rect) tea.Cmd {
	return click(m, r.X+r.W/2, r.Y+r.H/2)
}

func plainView(m *Model) string {
	return ansi.Strip(m.View())
}

func viewLines(m *Model) []string {
	return strings.Split(plainView(m), "\n")
}

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/gridform/pkg/process"
	"tableflip.dev/gridform/pkg/store"
)

type fakePersistence struct {
	saved *process.Process
}

func (f *fakePersistence) Save(_ context.Context, p *process.Process) (*process.Process, error) {
	f.saved = p
	return p, nil
}

func (f *fakePersistence) Get(_ context.Context, _, _ string) (*process.Process, error) {
	return nil, store.ErrNotFound
}

func (f *fakePersistence) List(_ context.Context, _ store.ListOptions) ([]process.Summary, error) {
	return nil, nil
}

func (f *fakePersistence) Search(_ context.Context, _ string) ([]process.Summary, error) {
	return nil, nil
}

func (f *fakePersistence) Delete(_ context.Context, _ string, _ bool) error {
	return nil
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := New(process.New("flow"), &fakePersistence{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func press(m Model, key string) Model {
	var msg tea.Msg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestAddBelowKey(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "b")
	if m.g.Len() != 2 {
		t.Fatalf("expected 2 cells after add below, got %d", m.g.Len())
	}
	if !m.dirty {
		t.Fatalf("grid should be marked dirty")
	}
	if m.row != 1 {
		t.Fatalf("cursor should follow the new cell, row %d", m.row)
	}
}

func TestAddRightKey(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "r")
	if m.g.Len() != 2 {
		t.Fatalf("expected 2 cells after add right, got %d", m.g.Len())
	}
	if len(m.ix.Columns) != 2 {
		t.Fatalf("expected 2 columns in the view, got %d", len(m.ix.Columns))
	}

	// The affordance is consumed; pressing r on the same cell again does
	// nothing.
	m = press(m, "r")
	if m.g.Len() != 2 {
		t.Fatalf("consumed affordance should not add again, got %d cells", m.g.Len())
	}
}

func TestAddRightDeepRowIsRefused(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "b") // cursor follows to 1.1, column 2 does not exist

	m = press(m, "r")
	if m.g.Len() != 2 {
		t.Fatalf("gap-opening add should not change the grid, got %d cells", m.g.Len())
	}
	if m.errMsg == "" {
		t.Fatalf("refused add should surface an error")
	}
}

func TestDeleteKeyResetsLastColumn(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "b")
	m = press(m, "k") // back to 1.0

	m = press(m, "d")
	if m.g.Len() != 1 {
		t.Fatalf("removing the only column should reset to the minimal grid, got %d cells", m.g.Len())
	}
}

func TestEditLabel(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "e")
	if !m.editing {
		t.Fatalf("expected editing mode")
	}
	m = press(m, "hi")
	m = press(m, "enter")

	if m.editing {
		t.Fatalf("enter should leave editing mode")
	}
	cell := m.current()
	if cell == nil || cell.Label != "hi" {
		t.Fatalf("expected label to stick, got %+v", cell)
	}
}

func TestSaveKey(t *testing.T) {
	fp := &fakePersistence{}
	m, err := New(process.New("flow"), fp)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m = press(m, "b")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("expected a save command")
	}

	msg := cmd()
	saved, ok := msg.(savedMsg)
	if !ok {
		t.Fatalf("expected savedMsg, got %T", msg)
	}
	if saved.err != nil {
		t.Fatalf("save: %v", saved.err)
	}
	if fp.saved == nil || len(fp.saved.Grid) != 2 {
		t.Fatalf("expected the mutated snapshot to be saved")
	}

	next, _ = m.Update(saved)
	m = next.(Model)
	if m.dirty {
		t.Fatalf("save should clear the dirty flag")
	}
}

func TestCursorClamping(t *testing.T) {
	m := newTestModel(t)

	for _, key := range []string{"h", "k", "l", "j"} {
		m = press(m, key)
	}
	if m.col != 0 || m.row != 0 {
		t.Fatalf("cursor escaped the single cell: col %d row %d", m.col, m.row)
	}
}

// Package tui is the interactive grid editor. One editor, one grid: every
// keystroke runs its mutation and the view rebuild to completion before the
// next event is handled.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/gridform/pkg/grid"
	"tableflip.dev/gridform/pkg/grid/viewmodel"
	"tableflip.dev/gridform/pkg/process"
	"tableflip.dev/gridform/pkg/store"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	cellStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	cursorStyle = cellStyle.Copy().BorderForeground(lipgloss.Color("205"))
	holeStyle   = cellStyle.Copy().Faint(true)
	markStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	statusStyle = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

type savedMsg struct {
	proc *process.Process
	err  error
}

// Model is the Bubble Tea model for the grid editor.
type Model struct {
	proc        *process.Process
	g           *grid.Grid
	ix          *viewmodel.Index
	persistence store.Persistence

	// cursor: column offset into ix.Columns, row is a sub index.
	col int
	row int

	editing bool
	input   textinput.Model

	dirty    bool
	status   string
	errMsg   string
	width    int
	height   int
	quitting bool
}

// New builds an editor over the process's grid.
func New(p *process.Process, persistence store.Persistence) (Model, error) {
	g, err := p.Restore()
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "label"
	ti.CharLimit = 64

	m := Model{
		proc:        p,
		g:           g,
		persistence: persistence,
		input:       ti,
	}
	m.rebuild()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("save failed: %v", msg.err)
			return m, nil
		}
		m.proc = msg.proc
		m.dirty = false
		m.errMsg = ""
		m.status = "saved"
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if cell := m.current(); cell != nil {
			if err := m.g.SetLabel(cell.Coord, m.input.Value()); err == nil {
				m.dirty = true
			}
		}
		m.editing = false
		m.input.Blur()
		m.rebuild()
		return m, nil
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.errMsg = ""

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "left", "h":
		m.col--
	case "right", "l":
		m.col++
	case "up", "k":
		m.row--
	case "down", "j":
		m.row++

	case "b":
		if cell := m.current(); cell != nil && cell.ShowBelow {
			m.mutate(func() error { return m.g.AddBelow(cell.Coord) })
			m.row = cell.Coord.Sub + 1
		}
	case "r":
		if cell := m.current(); cell != nil && cell.ShowRight {
			m.mutate(func() error { return m.g.AddRight(cell.Coord) })
		}
	case "d":
		if cell := m.current(); cell != nil {
			m.mutate(func() error { return m.g.Remove(cell.Coord) })
		}
	case "e":
		if cell := m.current(); cell != nil {
			m.editing = true
			m.input.SetValue(cell.Label)
			m.input.Focus()
			return m, textinput.Blink
		}
	case "s":
		if m.persistence == nil {
			m.errMsg = "no persistence configured"
			return m, nil
		}
		m.status = "saving..."
		return m, m.saveCmd()
	}

	m.clamp()
	return m, nil
}

func (m *Model) mutate(op func() error) {
	if err := op(); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.dirty = true
	m.rebuild()
}

// rebuild recomputes the derived column view from the grid and keeps the
// cursor on a real cell.
func (m *Model) rebuild() {
	m.ix = viewmodel.Build(m.g.Snapshot())
	m.clamp()
}

func (m *Model) clamp() {
	if m.col < 0 {
		m.col = 0
	}
	if m.col >= len(m.ix.Columns) {
		m.col = len(m.ix.Columns) - 1
	}
	if m.row < 0 {
		m.row = 0
	}
	if max := m.ix.Columns[m.col].MaxSub(); m.row > max {
		m.row = max
	}
}

// current returns the cell under the cursor, nil when the cursor sits on a
// hole.
func (m *Model) current() *grid.Cell {
	if m.col < 0 || m.col >= len(m.ix.Columns) {
		return nil
	}
	padded := m.ix.Columns[m.col].Padded()
	if m.row < 0 || m.row >= len(padded) {
		return nil
	}
	return padded[m.row]
}

func (m *Model) saveCmd() tea.Cmd {
	m.proc.SetGrid(m.g)
	proc := m.proc
	persistence := m.persistence
	return func() tea.Msg {
		saved, err := persistence.Save(context.Background(), proc)
		return savedMsg{proc: saved, err: err}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := m.proc.Name
	if m.dirty {
		title += " *"
	}

	cols := make([]string, 0, len(m.ix.Columns))
	for ci, col := range m.ix.Columns {
		cells := make([]string, 0, col.MaxSub()+1)
		for ri, cell := range col.Padded() {
			cells = append(cells, m.renderCell(cell, ci == m.col && ri == m.row))
		}
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Left, cells...))
	}

	footer := statusStyle.Render("move: ←↓↑→  b: add below  r: add right  d: delete  e: edit  s: save  q: quit")
	if m.editing {
		footer = "label: " + m.input.View()
	}
	if m.status != "" {
		footer += "  " + statusStyle.Render(m.status)
	}
	if m.errMsg != "" {
		footer += "  " + errStyle.Render(m.errMsg)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Top, cols...),
		footer,
	)
}

func (m Model) renderCell(cell *grid.Cell, selected bool) string {
	if cell == nil {
		return holeStyle.Render("   ")
	}

	label := cell.Label
	if label == "" {
		label = "·"
	}
	text := fmt.Sprintf("%s %s", label, statusStyle.Render(cell.Coord.String()))
	if cell.ShowRight {
		text += markStyle.Render(" →")
	}
	if cell.ShowBelow {
		text += markStyle.Render(" ↓")
	}

	if selected {
		return cursorStyle.Render(text)
	}
	return cellStyle.Render(text)
}

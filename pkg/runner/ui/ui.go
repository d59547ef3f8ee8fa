package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/gridform/pkg/process"
	"tableflip.dev/gridform/pkg/store"
	"tableflip.dev/gridform/pkg/tui"
)

type UI struct {
	ID   string
	Name string

	Persistence store.Persistence
}

func (n *UI) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}

	p, err := n.Persistence.Get(ctx, n.ID, n.Name)
	if err != nil {
		// Editing a name that does not exist yet starts a fresh grid.
		if errors.Is(err, store.ErrNotFound) && n.Name != "" {
			p = process.New(n.Name)
		} else {
			return err
		}
	}

	model, err := tui.New(p, n.Persistence)
	if err != nil {
		return err
	}

	prog := tea.NewProgram(model, tea.WithAltScreen())
	_, err = prog.Run()
	return err
}

package create

import (
	"context"
	"strings"
	"testing"

	"tableflip.dev/gridform/pkg/grid"
	"tableflip.dev/gridform/pkg/process"
	"tableflip.dev/gridform/pkg/store"
)

// fakePersistence keeps a single process in memory.
type fakePersistence struct {
	proc *process.Process
}

func (f *fakePersistence) Save(_ context.Context, p *process.Process) (*process.Process, error) {
	cp := *p
	cp.Grid = append([]process.GridItem(nil), p.Grid...)
	if cp.ID == "" {
		cp.ID = "id-1"
	}
	f.proc = &cp
	return &cp, nil
}

func (f *fakePersistence) Get(_ context.Context, id, name string) (*process.Process, error) {
	if f.proc == nil || (name != f.proc.Name && id != f.proc.ID) {
		return nil, store.ErrNotFound
	}
	cp := *f.proc
	return &cp, nil
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

func TestCreateSaves(t *testing.T) {
	fp := &fakePersistence{}

	s := Create{
		Name:        "flow",
		Description: "intake",
		Persistence: fp,
	}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	if fp.proc == nil || fp.proc.Name != "flow" {
		t.Fatalf("expected a saved process, got %+v", fp.proc)
	}
	if fp.proc.Description != "intake" {
		t.Fatalf("unexpected description %q", fp.proc.Description)
	}
	if len(fp.proc.Grid) != 1 || fp.proc.Grid[0].Name != "1.0" {
		t.Fatalf("expected the minimal grid, got %+v", fp.proc.Grid)
	}
}

func TestCreateExistingNameRefused(t *testing.T) {
	fp := &fakePersistence{}

	s := Create{Name: "flow", Persistence: fp}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	// Grow the stored grid so a wipe would be visible.
	g, err := fp.proc.Restore()
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if err := g.AddBelow(grid.Coordinate{Main: 1, Sub: 0}); err != nil {
		t.Fatalf("AddBelow: %v", err)
	}
	fp.proc.SetGrid(g)

	err = s.Do(context.Background())
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected an already-exists error, got %v", err)
	}
	if len(fp.proc.Grid) != 2 {
		t.Fatalf("existing grid should be untouched, got %d items", len(fp.proc.Grid))
	}
}

func TestCreateWithoutPersistence(t *testing.T) {
	s := Create{Name: "flow"}
	if err := s.Do(context.Background()); err == nil {
		t.Fatalf("expected an error without persistence")
	}
}

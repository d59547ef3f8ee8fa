package remove

import (
	"context"
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
	f.proc = &cp
	return p, nil
}

func (f *fakePersistence) Get(_ context.Context, id, name string) (*process.Process, error) {
	if f.proc == nil || (name != f.proc.Name && id != f.proc.ID) {
		return nil, store.ErrNotFound
	}
	cp := *f.proc
	cp.Grid = append([]process.GridItem(nil), f.proc.Grid...)
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

func seed(t *testing.T, coords ...grid.Coordinate) *fakePersistence {
	t.Helper()
	p := process.New("flow")
	g, err := p.Restore()
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	for _, c := range coords {
		if c.Sub > 0 {
			err = g.AddBelow(grid.Coordinate{Main: c.Main, Sub: c.Sub - 1})
		} else {
			err = g.AddRight(grid.Coordinate{Main: c.Main - 1, Sub: 0})
		}
		if err != nil {
			t.Fatalf("seed %s: %v", c, err)
		}
	}
	p.SetGrid(g)
	return &fakePersistence{proc: p}
}

func names(p *process.Process) []string {
	out := make([]string, 0, len(p.Grid))
	for _, item := range p.Grid {
		out = append(out, item.Name)
	}
	return out
}

func TestRemoveRowSaves(t *testing.T) {
	fp := seed(t,
		grid.Coordinate{Main: 1, Sub: 1},
		grid.Coordinate{Main: 1, Sub: 2},
	)

	s := Remove{
		Name:        "flow",
		At:          grid.Coordinate{Main: 1, Sub: 1},
		Persistence: fp,
	}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	got := names(fp.proc)
	if len(got) != 2 || got[0] != "1.0" || got[1] != "1.1" {
		t.Fatalf("unexpected grid after remove: %v", got)
	}
	if !fp.proc.Grid[1].ShowBelow {
		t.Fatalf("surviving tail should carry the add-below affordance")
	}
}

func TestRemoveColumnSaves(t *testing.T) {
	fp := seed(t,
		grid.Coordinate{Main: 2, Sub: 0},
		grid.Coordinate{Main: 3, Sub: 0},
	)

	s := Remove{
		Name:        "flow",
		At:          grid.Coordinate{Main: 2, Sub: 0},
		Persistence: fp,
	}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	got := names(fp.proc)
	if len(got) != 2 || got[0] != "1.0" || got[1] != "2.0" {
		t.Fatalf("unexpected grid after column remove: %v", got)
	}
}

func TestRemoveLastColumnResets(t *testing.T) {
	fp := seed(t, grid.Coordinate{Main: 1, Sub: 1})

	s := Remove{
		Name:        "flow",
		At:          grid.Coordinate{Main: 1, Sub: 0},
		Persistence: fp,
	}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	got := names(fp.proc)
	if len(got) != 1 || got[0] != "1.0" {
		t.Fatalf("expected the minimal grid, got %v", got)
	}
	if !fp.proc.Grid[0].ShowRight || !fp.proc.Grid[0].ShowBelow {
		t.Fatalf("minimal cell should offer both affordances, got %+v", fp.proc.Grid[0])
	}
}

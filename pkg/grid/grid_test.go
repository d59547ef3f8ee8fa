package grid

import (
	"errors"
	"testing"
)

func coords(g *Grid) []string {
	out := make([]string, 0, g.Len())
	for _, c := range g.Snapshot() {
		out = append(out, c.Coord.String())
	}
	return out
}

func expectCoords(t *testing.T, g *Grid, want ...string) {
	t.Helper()
	got := coords(g)
	if len(got) != len(want) {
		t.Fatalf("expected cells %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected cells %v, got %v", want, got)
		}
	}
}

func cellAt(t *testing.T, g *Grid, coord string) Cell {
	t.Helper()
	c, err := ParseCoordinate(coord)
	if err != nil {
		t.Fatalf("bad coordinate %q: %v", coord, err)
	}
	pos, ok := g.FindIndex(c)
	if !ok {
		t.Fatalf("no cell at %s, have %v", coord, coords(g))
	}
	return g.Cell(pos)
}

func TestNewMinimalGrid(t *testing.T) {
	g := New()
	expectCoords(t, g, "1.0")

	c := cellAt(t, g, "1.0")
	if !c.ShowRight || !c.ShowBelow {
		t.Fatalf("minimal cell should offer both affordances, got %+v", c)
	}
}

func TestFindIndex(t *testing.T) {
	g := New()
	if _, ok := g.FindIndex(Coordinate{Main: 1, Sub: 0}); !ok {
		t.Fatalf("expected to find 1.0")
	}
	if _, ok := g.FindIndex(Coordinate{Main: 2, Sub: 0}); ok {
		t.Fatalf("did not expect to find 2.0")
	}
}

func TestInsertRemoveAt(t *testing.T) {
	g := New()
	g.InsertAt(1, NewCell(Coordinate{Main: 2, Sub: 0}, true, true))
	expectCoords(t, g, "1.0", "2.0")

	g.RemoveAt(0)
	expectCoords(t, g, "2.0")
}

func TestReplaceAllSortsInput(t *testing.T) {
	g := New()
	err := g.ReplaceAll([]Cell{
		NewCell(Coordinate{Main: 2, Sub: 0}, true, true),
		NewCell(Coordinate{Main: 1, Sub: 1}, false, true),
		NewCell(Coordinate{Main: 1, Sub: 0}, false, false),
	})
	if err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	expectCoords(t, g, "1.0", "1.1", "2.0")
}

func TestReplaceAllRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
	}{
		{"empty", nil},
		{"main gap", []string{"1.0", "3.0"}},
		{"sub gap", []string{"1.0", "1.2"}},
		{"duplicate", []string{"1.0", "1.0"}},
		{"main starts at 2", []string{"2.0"}},
		{"column starts at sub 1", []string{"1.0", "2.1"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cells := make([]Cell, 0, len(tc.cells))
			for _, s := range tc.cells {
				c, err := ParseCoordinate(s)
				if err != nil {
					t.Fatalf("bad test coordinate %q: %v", s, err)
				}
				cells = append(cells, NewCell(c, false, false))
			}

			g := New()
			if err := g.ReplaceAll(cells); !errors.Is(err, ErrMalformedSnapshot) {
				t.Fatalf("expected ErrMalformedSnapshot, got %v", err)
			}
			// The failed replace must leave the previous contents alone.
			expectCoords(t, g, "1.0")
		})
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := New()
	snap := g.Snapshot()
	snap[0].Label = "scribbled"

	if got := cellAt(t, g, "1.0").Label; got != "" {
		t.Fatalf("snapshot mutation leaked into the grid: %q", got)
	}
}

func TestSetLabel(t *testing.T) {
	g := New()
	if err := g.SetLabel(Coordinate{Main: 1, Sub: 0}, "start"); err != nil {
		t.Fatalf("SetLabel: %v", err)
	}
	if got := cellAt(t, g, "1.0").Label; got != "start" {
		t.Fatalf("expected label start, got %q", got)
	}

	if err := g.SetLabel(Coordinate{Main: 9, Sub: 9}, "x"); !errors.Is(err, ErrNoCell) {
		t.Fatalf("expected ErrNoCell, got %v", err)
	}
}

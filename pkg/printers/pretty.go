package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/gridform/pkg/grid"
	"tableflip.dev/gridform/pkg/grid/viewmodel"
	"tableflip.dev/gridform/pkg/process"
)

type PrettyPrint struct {
	ShowID bool
}

const layoutUS = "Jan 2, 2006"

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// TitleWithCount prints a grid title with its cell count.
func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" cell")
	default:
		_, _ = c.Println(" cells")
	}
}

// Grid renders the column-grouped view as a table, one grid column per
// table column, padded so holes stay visible.
func (pp *PrettyPrint) Grid(ix *viewmodel.Index) {
	if ix == nil || len(ix.Columns) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := uitable.New()
	t.MaxColWidth = 24

	header := make([]interface{}, 0, len(ix.Columns))
	for _, col := range ix.Columns {
		header = append(header, fmt.Sprintf("col %d", col.Main))
	}
	t.AddRow(header...)

	rows := ix.Rows()
	for sub := 0; sub < rows; sub++ {
		row := make([]interface{}, 0, len(ix.Columns))
		for _, col := range ix.Columns {
			padded := col.Padded()
			if sub >= len(padded) || padded[sub] == nil {
				row = append(row, "")
				continue
			}
			row = append(row, renderCell(*padded[sub]))
		}
		t.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, t)
}

// renderCell makes `label [m.s] →↓`
func renderCell(c grid.Cell) string {
	faint := color.New(color.Faint)
	cyan := color.New(color.FgCyan)

	label := c.Label
	if label == "" {
		label = "·"
	}

	b := strings.Builder{}
	b.WriteString(label)
	b.WriteString(faint.Sprintf(" [%s]", c.Coord))
	if c.ShowRight {
		b.WriteString(cyan.Sprint(" →"))
	}
	if c.ShowBelow {
		b.WriteString(cyan.Sprint(" ↓"))
	}
	return b.String()
}

// Processes renders a process listing.
func (pp *PrettyPrint) Processes(all []process.Summary) {
	if len(all) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := uitable.New()
	t.MaxColWidth = 40

	if pp.ShowID {
		t.AddRow("ID", "NAME", "CELLS", "CREATED", "ACTIVE")
	} else {
		t.AddRow("NAME", "CELLS", "CREATED", "ACTIVE")
	}
	for _, s := range all {
		created := ""
		if !s.CreatedAt.IsZero() {
			created = s.CreatedAt.Local().Format(layoutUS)
		}
		if pp.ShowID {
			t.AddRow(s.ID, s.Name, s.GridCount, created, s.Active)
		} else {
			t.AddRow(s.Name, s.GridCount, created, s.Active)
		}
	}
	_, _ = fmt.Fprintln(color.Output, t)
}

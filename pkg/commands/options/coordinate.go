package options

import (
	"tableflip.dev/gridform/pkg/grid"
)

// CoordinateOptions carries the "main.sub" cell argument of mutation
// commands.
type CoordinateOptions struct {
	AtString string
}

// GetAt parses the coordinate argument.
func (o *CoordinateOptions) GetAt() (grid.Coordinate, error) {
	return grid.ParseCoordinate(o.AtString)
}

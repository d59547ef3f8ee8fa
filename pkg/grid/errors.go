// Package grid holds the coordinate-addressed cell grid and the mutation
// operations that keep it in canonical, gap-free shape.
package grid

import "errors"

var (
	// ErrInvalidCoordinate indicates a coordinate string that does not parse
	// as "main.sub" with main >= 1 and sub >= 0.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrMalformedSnapshot indicates a snapshot whose cells do not form a
	// contiguous, duplicate-free grid.
	ErrMalformedSnapshot = errors.New("malformed grid snapshot")

	// ErrNoCell indicates an operation targeting a coordinate with no cell.
	ErrNoCell = errors.New("no cell at coordinate")

	// ErrColumnGap indicates an insertion that would leave a hole below the
	// new cell, producing a grid that could never be reloaded.
	ErrColumnGap = errors.New("insertion would leave a column gap")
)

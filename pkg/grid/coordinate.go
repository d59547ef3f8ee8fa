package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate identifies a cell by its column ("main") and its row within
// that column ("sub"). Main starts at 1, sub at 0.
type Coordinate struct {
	Main int
	Sub  int
}

// ParseCoordinate converts the canonical "main.sub" form into a Coordinate.
func ParseCoordinate(s string) (Coordinate, error) {
	left, right, ok := strings.Cut(s, ".")
	if !ok {
		return Coordinate{}, fmt.Errorf("grid: parse %q: %w", s, ErrInvalidCoordinate)
	}
	main, err := strconv.Atoi(left)
	if err != nil {
		return Coordinate{}, fmt.Errorf("grid: parse %q: %w", s, ErrInvalidCoordinate)
	}
	sub, err := strconv.Atoi(right)
	if err != nil {
		return Coordinate{}, fmt.Errorf("grid: parse %q: %w", s, ErrInvalidCoordinate)
	}
	c := Coordinate{Main: main, Sub: sub}
	if !c.Valid() {
		return Coordinate{}, fmt.Errorf("grid: parse %q: %w", s, ErrInvalidCoordinate)
	}
	return c, nil
}

// Valid reports whether the coordinate is inside the addressable space.
func (c Coordinate) Valid() bool {
	return c.Main >= 1 && c.Sub >= 0
}

// String renders the canonical "main.sub" form.
func (c Coordinate) String() string {
	return fmt.Sprintf("%d.%d", c.Main, c.Sub)
}

// Compare orders coordinates by main, then sub.
func (c Coordinate) Compare(o Coordinate) int {
	if c.Main != o.Main {
		if c.Main < o.Main {
			return -1
		}
		return 1
	}
	if c.Sub != o.Sub {
		if c.Sub < o.Sub {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether c sorts before o.
func (c Coordinate) Less(o Coordinate) bool {
	return c.Compare(o) < 0
}

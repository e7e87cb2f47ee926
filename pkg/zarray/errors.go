package zarray

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrOutOfBounds matches every *LookupError via errors.Is.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// LookupError reports a checked access outside the logical extent.
type LookupError struct {
	// Coord is the attempted coordinate, one entry per axis.
	Coord []int
	// Bounds is the logical extent of the grid, one entry per axis.
	Bounds []int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("could not access coordinate %s because it is out of range for size %s",
		tuple(e.Coord), tuple(e.Bounds))
}

// GoString renders the structured form used by %#v.
func (e *LookupError) GoString() string {
	return fmt.Sprintf("&zarray.LookupError{Coord: %s, Bounds: %s}", tuple(e.Coord), tuple(e.Bounds))
}

// Is makes errors.Is(err, ErrOutOfBounds) hold.
func (e *LookupError) Is(target error) bool { return target == ErrOutOfBounds }

func tuple(v []int) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, n := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteByte(')')
	return sb.String()
}

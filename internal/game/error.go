package game

import (
	"errors"
	"fmt"
)

var ErrCellOccupied = errors.New("cell is already occupied")

// OutOfRangeError is raised (via panic) when a position falls outside the
// board. Input clamping makes it unreachable in normal play.
type OutOfRangeError struct {
	Pos  Position
	Size int
}

// [OutOfRangeError] implements [error]
func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("position %s out of range for %dx%d board", e.Pos, e.Size, e.Size)
}

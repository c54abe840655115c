package game

import (
	"fmt"
	"strings"
)

type CellState int8

const (
	Empty CellState = iota
	Occupied
	Revealed // display only, set on the bomb cell when the match ends
)

const (
	EmptySymbol = "·"
	BombSymbol  = "💣"
)

type Cell struct {
	State  CellState
	Symbol string
}

func (c Cell) String() string {
	switch c.State {
	case Occupied:
		return c.Symbol
	case Revealed:
		return BombSymbol
	default:
		return EmptySymbol
	}
}

type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is a detached copy of the board, row-major.
type Grid [][]Cell

func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g {
		for _, c := range row {
			fmt.Fprint(&b, c.String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

type Board struct {
	size  int
	cells []Cell
}

func NewBoard(size int) *Board {
	if size < 1 {
		panic(OutOfRangeError{Size: size})
	}
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(p Position) bool {
	return 0 <= p.Row && p.Row < b.size && 0 <= p.Col && p.Col < b.size
}

// panics [OutOfRangeError]
func (b *Board) index(p Position) int {
	if !b.InBounds(p) {
		panic(OutOfRangeError{Pos: p, Size: b.size})
	}
	return p.Row*b.size + p.Col
}

func (b *Board) IsOccupied(p Position) bool {
	return b.cells[b.index(p)].State == Occupied
}

func (b *Board) Place(p Position, symbol string) error {
	i := b.index(p)
	if b.cells[i].State != Empty {
		return fmt.Errorf("place %s at %s: %w", symbol, p, ErrCellOccupied)
	}
	b.cells[i] = Cell{State: Occupied, Symbol: symbol}
	return nil
}

func (b *Board) reveal(p Position) {
	b.cells[b.index(p)] = Cell{State: Revealed}
}

func (b *Board) EmptyCells() []Position {
	var empty []Position
	for i, c := range b.cells {
		if c.State == Empty {
			empty = append(empty, Position{Row: i / b.size, Col: i % b.size})
		}
	}
	return empty
}

func (b *Board) Snapshot() Grid {
	grid := make(Grid, b.size)
	for r := range b.size {
		grid[r] = make([]Cell, b.size)
		copy(grid[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return grid
}

func (b *Board) String() string {
	return b.Snapshot().String()
}

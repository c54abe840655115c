package game

// Rand is satisfied by *math/rand/v2.Rand.
type Rand interface {
	IntN(n int) int
}

// BombField holds the single hazard of a match. It is fixed at construction.
type BombField struct {
	size int
	pos  Position
}

func NewBombField(size int, r Rand) *BombField {
	idx := r.IntN(size * size)
	return &BombField{
		size: size,
		pos:  Position{Row: idx / size, Col: idx % size},
	}
}

// BombFieldAt places the hazard at a known position.
func BombFieldAt(size int, p Position) *BombField {
	if p.Row < 0 || p.Row >= size || p.Col < 0 || p.Col >= size {
		panic(OutOfRangeError{Pos: p, Size: size})
	}
	return &BombField{size: size, pos: p}
}

func (f *BombField) Size() int {
	return f.size
}

func (f *BombField) Position() Position {
	return f.pos
}

func (f *BombField) IsHazard(p Position) bool {
	return f.pos == p
}

func (f *BombField) Reveal(b *Board) {
	if b.Size() != f.size {
		panic(OutOfRangeError{Pos: f.pos, Size: b.Size()})
	}
	b.reveal(f.pos)
}

// IsDraw reports whether every cell left empty is the hazard. It assumes
// exactly one hazard per board.
func IsDraw(b *Board, f *BombField) bool {
	for _, p := range b.EmptyCells() {
		if !f.IsHazard(p) {
			return false
		}
	}
	return true
}

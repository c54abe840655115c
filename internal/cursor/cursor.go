package cursor

// Cursor is a position bounded to rows x cols. Moves past an edge are no-ops.
type Cursor struct {
	rows, cols int
	row, col   int
}

func New(rows, cols int) *Cursor {
	return &Cursor{rows: rows, cols: cols}
}

func (c *Cursor) Position() (row, col int) {
	return c.row, c.col
}

func (c *Cursor) Reset() {
	c.row, c.col = 0, 0
}

// Move applies a directional intent and reports whether the cursor moved.
func (c *Cursor) Move(in Intent) bool {
	row, col := c.row, c.col
	switch in {
	case Left:
		col--
	case Right:
		col++
	case Up:
		row--
	case Down:
		row++
	default:
		return false
	}
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return false
	}
	c.row, c.col = row, col
	return true
}

// Jump moves to the k-th cell (1-based, row-major).
func (c *Cursor) Jump(k int) bool {
	if k < 1 || k > c.rows*c.cols {
		return false
	}
	c.row, c.col = (k-1)/c.cols, (k-1)%c.cols
	return true
}

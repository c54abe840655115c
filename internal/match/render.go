package match

import "github.com/vancomm/bombtoe/internal/game"

type BoardView struct {
	Grid game.Grid
	// Cursor is nil when the cursor is hidden.
	Cursor  *game.Position
	Prompt  string
	Message string
}

type MenuView struct {
	Title      string
	Options    []string
	Selected   int
	Horizontal bool
	Message    string
}

// Renderer draws the latest state; every call replaces what was drawn before.
type Renderer interface {
	Board(v BoardView)
	Menu(v MenuView)
}

const (
	msgOccupied = "Position already taken, choose another!"
	msgInvalid  = "Invalid key, try again"
	msgContinue = "Press ENTER to continue..."
	msgDraw     = "DRAW! Both players blew up"
)

package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/bombtoe/internal/cursor"
)

// translate maps a key press to an intent. quit is set for Esc, Ctrl-C and q.
func translate(ev *tcell.EventKey) (in cursor.Intent, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cursor.None, true
	case tcell.KeyEnter:
		return cursor.Confirm, false
	case tcell.KeyLeft:
		return cursor.Left, false
	case tcell.KeyRight:
		return cursor.Right, false
	case tcell.KeyUp:
		return cursor.Up, false
	case tcell.KeyDown:
		return cursor.Down, false
	case tcell.KeyRune:
		r := unicode.ToLower(ev.Rune())
		switch {
		case r == 'w':
			return cursor.Up, false
		case r == 'a':
			return cursor.Left, false
		case r == 's':
			return cursor.Down, false
		case r == 'd':
			return cursor.Right, false
		case r == 'q':
			return cursor.None, true
		case '1' <= r && r <= '9':
			return cursor.Digit(int(r - '0')), false
		}
	}
	return cursor.None, false
}

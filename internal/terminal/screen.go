package terminal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/vancomm/bombtoe/internal/cursor"
	"github.com/vancomm/bombtoe/internal/game"
	"github.com/vancomm/bombtoe/internal/match"
)

var ErrClosed = errors.New("terminal closed")

const title = "===== Minefield ====="

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = styleDefault.Bold(true)
	styleCursor  = styleDefault.Reverse(true)
	styleMessage = styleDefault.Foreground(tcell.ColorYellow)
	styleHelp    = styleDefault.Dim(true)
)

// Screen is both the intent source and the renderer of a running game.
type Screen struct {
	s        tcell.Screen
	redraw   func()
	finiOnce sync.Once
}

func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("unable to create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("unable to init screen: %w", err)
	}
	return Wrap(s), nil
}

// Wrap uses an already initialised screen.
func Wrap(s tcell.Screen) *Screen {
	s.SetStyle(styleDefault)
	s.HideCursor()
	return &Screen{s: s, redraw: func() {}}
}

// Close restores the terminal. It unblocks a pending [Screen.Next].
func (t *Screen) Close() {
	t.finiOnce.Do(t.s.Fini)
}

// Next blocks until a key maps to an intent. ctx is only checked between
// events: a Next blocked on input returns once [Screen.Close] is called,
// with ctx.Err() if ctx is done by then and [ErrClosed] otherwise.
//
// [Screen] implements [cursor.Source]
func (t *Screen) Next(ctx context.Context) (cursor.Intent, error) {
	for {
		if err := ctx.Err(); err != nil {
			return cursor.None, err
		}
		switch ev := t.s.PollEvent().(type) {
		case nil:
			if err := ctx.Err(); err != nil {
				return cursor.None, err
			}
			return cursor.None, ErrClosed
		case *tcell.EventResize:
			t.s.Sync()
			t.redraw()
		case *tcell.EventKey:
			in, quit := translate(ev)
			if quit {
				return cursor.None, cursor.ErrQuit
			}
			return in, nil
		}
	}
}

// [Screen] implements [match.Renderer]
func (t *Screen) Board(v match.BoardView) {
	t.redraw = func() { t.drawBoard(v) }
	t.redraw()
}

func (t *Screen) Menu(v match.MenuView) {
	t.redraw = func() { t.drawMenu(v) }
	t.redraw()
}

func (t *Screen) drawBoard(v match.BoardView) {
	t.s.Clear()
	y := t.header(0)
	if v.Cursor != nil {
		t.put(0, y, "Use W, A, S, D to move | 1-9 to jump | ENTER to confirm", styleHelp)
		y += 2
	}

	for r, row := range v.Grid {
		x := 2
		for c, cell := range row {
			text := pad(cell.String(), 2)
			if v.Cursor != nil && *v.Cursor == (game.Position{Row: r, Col: c}) {
				x = t.put(x, y, "["+text+"]", styleCursor)
			} else {
				x = t.put(x, y, " "+text+" ", styleDefault)
			}
			x += 2
		}
		y += 2
	}

	t.footer(y, v.Prompt, v.Message)
	t.s.Show()
}

func (t *Screen) drawMenu(v match.MenuView) {
	t.s.Clear()
	y := t.header(0)
	if v.Horizontal {
		t.put(0, y, "Use A, D to move | ENTER to confirm", styleHelp)
	} else {
		t.put(0, y, "Use W, S to move | ENTER to confirm", styleHelp)
	}
	y += 2

	if v.Horizontal {
		x := 2
		for i, opt := range v.Options {
			if i == v.Selected {
				x = t.put(x, y, "[x] "+opt, styleCursor)
			} else {
				x = t.put(x, y, "[ ] "+opt, styleDefault)
			}
			x += 4
		}
		y += 2
	} else {
		for i, opt := range v.Options {
			if i == v.Selected {
				t.put(2, y, "[x] "+opt, styleCursor)
			} else {
				t.put(2, y, "[ ] "+opt, styleDefault)
			}
			y += 2
		}
	}

	t.footer(y, v.Title, v.Message)
	t.s.Show()
}

func (t *Screen) header(y int) int {
	t.put(0, y, title, styleTitle)
	return y + 2
}

func (t *Screen) footer(y int, prompt, message string) int {
	if prompt != "" {
		t.put(0, y, prompt, styleTitle)
		y += 2
	}
	if message != "" {
		t.put(0, y, message, styleMessage)
		y++
	}
	return y
}

// put writes s starting at column x and returns the column after it.
func (t *Screen) put(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		t.s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

func pad(s string, width int) string {
	if n := runewidth.StringWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

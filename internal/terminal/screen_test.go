package terminal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/bombtoe/internal/cursor"
	"github.com/vancomm/bombtoe/internal/game"
	"github.com/vancomm/bombtoe/internal/match"
)

func newSimScreen(t *testing.T) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 24)
	scr := Wrap(s)
	t.Cleanup(scr.Close)
	return s, scr
}

// text returns the visible screen contents, one string per row.
func text(s tcell.SimulationScreen) []string {
	cells, w, h := s.GetContents()
	rows := make([]string, h)
	for y := range h {
		var b strings.Builder
		for x := range w {
			c := cells[y*w+x]
			if len(c.Runes) == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteRune(c.Runes[0])
		}
		rows[y] = b.String()
	}
	return rows
}

func contains(rows []string, sub string) bool {
	for _, r := range rows {
		if strings.Contains(r, sub) {
			return true
		}
	}
	return false
}

func TestNextTranslatesKeys(t *testing.T) {
	s, scr := newSimScreen(t)
	tests := []struct {
		key  tcell.Key
		r    rune
		want cursor.Intent
	}{
		{tcell.KeyRune, 'w', cursor.Up},
		{tcell.KeyRune, 'A', cursor.Left},
		{tcell.KeyRune, 's', cursor.Down},
		{tcell.KeyRune, 'D', cursor.Right},
		{tcell.KeyUp, 0, cursor.Up},
		{tcell.KeyDown, 0, cursor.Down},
		{tcell.KeyLeft, 0, cursor.Left},
		{tcell.KeyRight, 0, cursor.Right},
		{tcell.KeyEnter, 0, cursor.Confirm},
		{tcell.KeyRune, '7', cursor.Digit(7)},
		{tcell.KeyRune, 'x', cursor.None},
		{tcell.KeyTab, 0, cursor.None},
	}
	for _, test := range tests {
		s.InjectKey(test.key, test.r, tcell.ModNone)
		in, err := scr.Next(context.Background())
		require.NoError(t, err)
		assert.Equal(t, test.want, in, "key %v rune %q", test.key, test.r)
	}
}

func TestNextQuit(t *testing.T) {
	s, scr := newSimScreen(t)
	for _, key := range []tcell.Key{tcell.KeyEscape, tcell.KeyCtrlC} {
		s.InjectKey(key, 0, tcell.ModNone)
		_, err := scr.Next(context.Background())
		assert.ErrorIs(t, err, cursor.ErrQuit)
	}
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	_, err := scr.Next(context.Background())
	assert.ErrorIs(t, err, cursor.ErrQuit)
}

func TestNextAfterClose(t *testing.T) {
	_, scr := newSimScreen(t)
	scr.Close()
	_, err := scr.Next(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestNextCancelled(t *testing.T) {
	_, scr := newSimScreen(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := scr.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNextUnblockedByClose(t *testing.T) {
	tests := []struct {
		name   string
		cancel bool
		want   error
	}{
		{"closed", false, ErrClosed},
		{"cancelled then closed", true, context.Canceled},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, scr := newSimScreen(t)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			errc := make(chan error, 1)
			go func() {
				_, err := scr.Next(ctx)
				errc <- err
			}()

			select {
			case err := <-errc:
				t.Fatalf("Next returned before Close: %v", err)
			case <-time.After(20 * time.Millisecond):
			}
			if test.cancel {
				cancel()
			}
			scr.Close()

			select {
			case err := <-errc:
				assert.ErrorIs(t, err, test.want)
			case <-time.After(time.Second):
				t.Fatal("Next still blocked after Close")
			}
		})
	}
}

func TestDrawBoard(t *testing.T) {
	s, scr := newSimScreen(t)
	board := game.NewBoard(3)
	require.NoError(t, board.Place(game.Position{Row: 1, Col: 1}, "X"))

	scr.Board(match.BoardView{
		Grid:    board.Snapshot(),
		Cursor:  &game.Position{Row: 1, Col: 1},
		Prompt:  "Place your O",
		Message: "Position already taken, choose another!",
	})

	rows := text(s)
	assert.True(t, contains(rows, title))
	assert.True(t, contains(rows, "[X ]"))
	assert.True(t, contains(rows, "Place your O"))
	assert.True(t, contains(rows, "Position already taken"))
	assert.True(t, contains(rows, "ENTER to confirm"))
}

func TestDrawBoardHiddenCursor(t *testing.T) {
	s, scr := newSimScreen(t)
	board := game.NewBoard(3)
	require.NoError(t, board.Place(game.Position{Row: 0, Col: 0}, "X"))

	scr.Board(match.BoardView{Grid: board.Snapshot(), Prompt: "DRAW!"})

	rows := text(s)
	assert.False(t, contains(rows, "["))
	assert.False(t, contains(rows, "ENTER to confirm"))
	assert.True(t, contains(rows, "DRAW!"))
}

func TestDrawMenu(t *testing.T) {
	s, scr := newSimScreen(t)

	scr.Menu(match.MenuView{
		Title:      "Play again?",
		Options:    []string{"Yes", "No"},
		Selected:   1,
		Horizontal: true,
	})
	rows := text(s)
	assert.True(t, contains(rows, "[ ] Yes"))
	assert.True(t, contains(rows, "[x] No"))
	assert.True(t, contains(rows, "Play again?"))
	assert.True(t, contains(rows, "Use A, D"))

	scr.Menu(match.MenuView{
		Title:   "Select the symbol of Player 1",
		Options: []string{"a", "b", "c"},
		Message: "Invalid key, try again",
	})
	rows = text(s)
	assert.True(t, contains(rows, "[x] a"))
	assert.True(t, contains(rows, "[ ] c"))
	assert.True(t, contains(rows, "Use W, S"))
	assert.True(t, contains(rows, "Invalid key"))
}

func TestResizeRedraws(t *testing.T) {
	s, scr := newSimScreen(t)
	scr.Menu(match.MenuView{Title: "Play again?", Options: []string{"Yes", "No"}, Horizontal: true})

	s.SetSize(100, 30)
	require.NoError(t, s.PostEvent(tcell.NewEventResize(100, 30)))
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	in, err := scr.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cursor.Confirm, in)
	assert.True(t, contains(text(s), "Play again?"))
}

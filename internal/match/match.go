package match

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/bombtoe/internal/cursor"
	"github.com/vancomm/bombtoe/internal/game"
)

var Log = logrus.New()

// Result of a finished match. Winner and Loser are zero on a draw.
type Result struct {
	Draw   bool
	Winner game.Player
	Loser  game.Player
	Turns  int
}

func (r Result) String() string {
	if r.Draw {
		return "draw"
	}
	return fmt.Sprintf("%s wins, %s loses", r.Winner, r.Loser)
}

type Controller struct {
	src    cursor.Source
	render Renderer
	rnd    game.Rand
	size   int
}

func NewController(src cursor.Source, render Renderer, rnd game.Rand, size int) *Controller {
	return &Controller{
		src:    src,
		render: render,
		rnd:    rnd,
		size:   size,
	}
}

// Run plays matches until the players decline a rematch.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if _, err := c.Play(ctx); err != nil {
			return err
		}
		again, err := c.PlayAgain(ctx)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// Play runs one match from symbol selection to the final board.
func (c *Controller) Play(ctx context.Context) (Result, error) {
	log := Log.WithField("match", uuid.NewString())

	first, err := c.selectPlayer(ctx, "Player 1")
	if err != nil {
		return Result{}, err
	}
	second, err := c.selectPlayer(ctx, "Player 2")
	if err != nil {
		return Result{}, err
	}
	first, second = game.Pair(first, second)

	board := game.NewBoard(c.size)
	field := game.NewBombField(c.size, c.rnd)

	log.WithFields(logrus.Fields{
		"player1": first.String(),
		"player2": second.String(),
		"size":    c.size,
	}).Info("match started")
	log.WithField("bomb", field.Position().String()).Trace("bomb placed")

	result, err := c.loop(ctx, board, field, first, second, log)
	if err != nil {
		return Result{}, fmt.Errorf("match aborted: %w", err)
	}

	var headline string
	if result.Draw {
		field.Reveal(board)
		headline = msgDraw
	} else {
		headline = fmt.Sprintf("BOOM! %s %s wins!", result.Winner.Symbol(), result.Winner.Name())
	}
	c.render.Board(BoardView{
		Grid:    board.Snapshot(),
		Prompt:  headline,
		Message: msgContinue,
	})

	log.WithFields(logrus.Fields{
		"result": result.String(),
		"turns":  result.Turns,
	}).Info("match over")

	if err := c.waitConfirm(ctx); err != nil {
		return result, err
	}
	return result, nil
}

func (c *Controller) loop(
	ctx context.Context,
	board *game.Board, field *game.BombField,
	first, second game.Player,
	log *logrus.Entry,
) (Result, error) {
	players := [2]game.Player{first, second}
	engine := NewTurnEngine(c.src, c.render, log)

	for turn := 0; ; turn++ {
		current, other := players[turn%2], players[(turn+1)%2]

		outcome, err := engine.TakeTurn(ctx, board, field, current)
		if err != nil {
			return Result{}, err
		}
		if outcome == Hit {
			return Result{Winner: other, Loser: current, Turns: turn + 1}, nil
		}
		if game.IsDraw(board, field) {
			return Result{Draw: true, Turns: turn + 1}, nil
		}
	}
}

func (c *Controller) selectPlayer(ctx context.Context, name string) (game.Player, error) {
	symbols := game.Symbols()
	view := MenuView{
		Title:   "Select the symbol of " + name,
		Options: symbols,
	}
	res := cursor.NewVerticalMenu(c.src, len(symbols), c.menuHooks(&view))
	c.render.Menu(view)

	i, err := res.Index(ctx)
	if err != nil {
		return game.Player{}, err
	}
	return game.NewPlayer(name, symbols[i]), nil
}

// PlayAgain asks whether to start another match.
func (c *Controller) PlayAgain(ctx context.Context) (bool, error) {
	view := MenuView{
		Title:      "Play again?",
		Options:    []string{"Yes", "No"},
		Horizontal: true,
	}
	res := cursor.NewHorizontalMenu(c.src, len(view.Options), c.menuHooks(&view))
	c.render.Menu(view)

	i, err := res.Index(ctx)
	if err != nil {
		return false, err
	}
	return i == 0, nil
}

func (c *Controller) menuHooks(view *MenuView) cursor.Hooks {
	return cursor.Hooks{
		Moved: func(row, col int) {
			if view.Horizontal {
				view.Selected = col
			} else {
				view.Selected = row
			}
			view.Message = ""
			c.render.Menu(*view)
		},
		Rejected: func(cursor.Intent) {
			view.Message = msgInvalid
			c.render.Menu(*view)
		},
	}
}

func (c *Controller) waitConfirm(ctx context.Context) error {
	for {
		in, err := c.src.Next(ctx)
		if err != nil {
			return err
		}
		if in == cursor.Confirm {
			return nil
		}
	}
}

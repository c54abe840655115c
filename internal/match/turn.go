package match

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/bombtoe/internal/cursor"
	"github.com/vancomm/bombtoe/internal/game"
)

type Outcome int8

const (
	// Aborted is reported alongside an error; no move was made.
	Aborted Outcome = iota
	Placed
	Hit
	RejectedOccupied
)

func (o Outcome) String() string {
	switch o {
	case Aborted:
		return "aborted"
	case Placed:
		return "placed"
	case Hit:
		return "hit"
	case RejectedOccupied:
		return "rejected"
	}
	return "unknown"
}

// Apply resolves a single confirmed position for the given symbol.
func Apply(board *game.Board, field *game.BombField, pos game.Position, symbol string) (Outcome, error) {
	if field.IsHazard(pos) {
		field.Reveal(board)
		return Hit, nil
	}
	if board.IsOccupied(pos) {
		return RejectedOccupied, nil
	}
	if err := board.Place(pos, symbol); err != nil {
		return Aborted, err
	}
	return Placed, nil
}

type TurnEngine struct {
	src    cursor.Source
	render Renderer
	log    *logrus.Entry
}

func NewTurnEngine(src cursor.Source, render Renderer, log *logrus.Entry) *TurnEngine {
	if log == nil {
		log = logrus.NewEntry(Log)
	}
	return &TurnEngine{src: src, render: render, log: log}
}

// TakeTurn prompts the player until they either place their symbol or hit
// the bomb. Occupied cells are rejected and the player picks again from the
// same cursor position. Every turn starts with the cursor at (0,0).
func (t *TurnEngine) TakeTurn(
	ctx context.Context, board *game.Board, field *game.BombField, player game.Player,
) (Outcome, error) {
	prompt := "Place your " + player.Symbol()
	draw := func(row, col int, message ...string) {
		t.render.Board(BoardView{
			Grid:    board.Snapshot(),
			Cursor:  &game.Position{Row: row, Col: col},
			Prompt:  prompt,
			Message: strings.Join(message, ""),
		})
	}

	var res *cursor.Resolver
	res = cursor.NewGrid(t.src, board.Size(), board.Size(), cursor.Hooks{
		Moved: func(row, col int) { draw(row, col) },
		Rejected: func(cursor.Intent) {
			row, col := res.Position()
			draw(row, col, msgInvalid)
		},
	})
	draw(res.Position())

	for {
		row, col, err := res.Resolve(ctx)
		if err != nil {
			return Aborted, err
		}
		pos := game.Position{Row: row, Col: col}
		outcome, err := Apply(board, field, pos, player.Symbol())
		if err != nil {
			return outcome, fmt.Errorf("turn of %s: %w", player.Name(), err)
		}

		t.log.WithFields(logrus.Fields{
			"player":  player.Name(),
			"symbol":  player.Symbol(),
			"row":     row,
			"col":     col,
			"outcome": outcome.String(),
		}).Debug("confirmed cell")

		if outcome != RejectedOccupied {
			return outcome, nil
		}
		draw(row, col, msgOccupied)
	}
}

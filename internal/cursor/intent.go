package cursor

import (
	"context"
	"errors"
	"strconv"
)

// ErrQuit is returned by a [Source] when the user asks to leave the game.
var ErrQuit = errors.New("quit requested")

type Intent int

const (
	None Intent = iota // unrecognised input
	Left
	Right
	Up
	Down
	Confirm

	digitBase Intent = 100
)

// Digit is a direct pick of the k-th cell (1-based, row-major).
func Digit(k int) Intent {
	return digitBase + Intent(k)
}

func (in Intent) Digit() (int, bool) {
	if in > digitBase {
		return int(in - digitBase), true
	}
	return 0, false
}

func (in Intent) String() string {
	switch in {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case Confirm:
		return "confirm"
	}
	if k, ok := in.Digit(); ok {
		return "digit " + strconv.Itoa(k)
	}
	return "none"
}

// Source yields one intent per call, blocking until input arrives.
type Source interface {
	Next(ctx context.Context) (Intent, error)
}

// Script is a [Source] that replays a fixed sequence of intents and then
// reports [ErrQuit].
type Script struct {
	intents []Intent
	pos     int
}

func NewScript(intents ...Intent) *Script {
	return &Script{intents: intents}
}

func (s *Script) Next(ctx context.Context) (Intent, error) {
	if err := ctx.Err(); err != nil {
		return None, err
	}
	if s.pos >= len(s.intents) {
		return None, ErrQuit
	}
	in := s.intents[s.pos]
	s.pos++
	return in, nil
}

// Remaining reports how many scripted intents have not been read yet.
func (s *Script) Remaining() int {
	return len(s.intents) - s.pos
}

package cursor

import (
	"context"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Hooks struct {
	// Moved is called after every cursor move.
	Moved func(row, col int)
	// Rejected is called for every intent the resolver does not accept.
	Rejected func(in Intent)
}

// Resolver turns intents from a [Source] into a confirmed cursor position.
// Only intents in its legal set are acted on.
type Resolver struct {
	src    Source
	cur    *Cursor
	legal  map[Intent]bool
	digits bool
	hooks  Hooks
}

// NewGrid accepts all four directions, confirm and digit picks.
func NewGrid(src Source, rows, cols int, hooks Hooks) *Resolver {
	return &Resolver{
		src: src,
		cur: New(rows, cols),
		legal: map[Intent]bool{
			Left: true, Right: true, Up: true, Down: true, Confirm: true,
		},
		digits: true,
		hooks:  hooks,
	}
}

// NewVerticalMenu navigates n options with Up/Down.
func NewVerticalMenu(src Source, n int, hooks Hooks) *Resolver {
	return &Resolver{
		src:   src,
		cur:   New(n, 1),
		legal: map[Intent]bool{Up: true, Down: true, Confirm: true},
		hooks: hooks,
	}
}

// NewHorizontalMenu navigates n options with Left/Right.
func NewHorizontalMenu(src Source, n int, hooks Hooks) *Resolver {
	return &Resolver{
		src:   src,
		cur:   New(1, n),
		legal: map[Intent]bool{Left: true, Right: true, Confirm: true},
		hooks: hooks,
	}
}

func (r *Resolver) Position() (row, col int) {
	return r.cur.Position()
}

// Resolve blocks until Confirm and returns the cursor position at that
// moment. The cursor is kept between calls.
func (r *Resolver) Resolve(ctx context.Context) (row, col int, err error) {
	for {
		in, err := r.src.Next(ctx)
		if err != nil {
			return 0, 0, err
		}

		if k, ok := in.Digit(); ok && r.digits {
			if r.cur.Jump(k) {
				r.moved()
			} else {
				r.reject(in)
			}
			continue
		}

		if !r.legal[in] {
			r.reject(in)
			continue
		}

		if in == Confirm {
			row, col := r.cur.Position()
			return row, col, nil
		}

		if r.cur.Move(in) {
			r.moved()
		}
	}
}

// Index resolves a menu choice as a flat index.
func (r *Resolver) Index(ctx context.Context) (int, error) {
	row, col, err := r.Resolve(ctx)
	if err != nil {
		return 0, err
	}
	return row*r.cur.cols + col, nil
}

func (r *Resolver) moved() {
	if r.hooks.Moved != nil {
		r.hooks.Moved(r.cur.Position())
	}
}

func (r *Resolver) reject(in Intent) {
	Log.WithField("intent", in.String()).Debug("rejected intent")
	if r.hooks.Rejected != nil {
		r.hooks.Rejected(in)
	}
}

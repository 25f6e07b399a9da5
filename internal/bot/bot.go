package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/solver"
)

var ErrUnknownStrategy = errors.New("unknown player type")

//go:generate mockgen -source=bot.go -destination=mocks/mock_strategy.go -package=mocks

// Strategy chooses the next move for a player. The board is a snapshot;
// the returned cell must be empty on it. The caller places the mark.
type Strategy interface {
	SelectMove(ctx context.Context, mark game.PlayerMark, board game.Board) (int, error)
}

// Kind names a Strategy implementation.
type Kind string

const (
	KindHuman       Kind = "human"
	KindRandom      Kind = "random"
	KindRandomSmart Kind = "randomsmart"
	KindEval        Kind = "eval"
)

// Parse maps a command-line player name to a Kind. Short forms and the
// easy/medium/hard difficulty names are accepted.
func Parse(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "human", "h":
		return KindHuman, nil
	case "random", "r", "easy":
		return KindRandom, nil
	case "randomsmart", "rs", "medium":
		return KindRandomSmart, nil
	case "eval", "e", "hard":
		return KindEval, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Deps carries what the strategies need from the outside world.
type Deps struct {
	// Input and Output back the human prompt.
	Input  io.Reader
	Output io.Writer
	// Marks renders a player's mark in prompts. Optional.
	Marks Marker
	// Board redraws the board when a human picks a taken cell. Optional.
	Board BoardView
	// Rand drives Random and RandomSmart. Optional.
	Rand solver.Source
	// Evaluator backs Eval. A fresh one is created when nil.
	Evaluator *solver.Evaluator
	// Diagnostics receives the evaluator's per-move analysis. Optional.
	Diagnostics io.Writer
}

// New builds the Strategy for kind.
func New(kind Kind, deps Deps) (Strategy, error) {
	switch kind {
	case KindHuman:
		return NewHuman(deps.Input, deps.Output, deps.Marks).WithView(deps.Board), nil
	case KindRandom:
		return NewRandom(deps.Rand), nil
	case KindRandomSmart:
		return NewRandomSmart(deps.Rand), nil
	case KindEval:
		e := deps.Evaluator
		if e == nil {
			e = solver.New(solver.WithRand(deps.Rand))
		}
		return NewEval(e, deps.Diagnostics), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, kind)
	}
}

// NewPlayers builds the strategies for X and O. Two human players share one
// prompt so they read from the same input stream.
func NewPlayers(x, o Kind, deps Deps) (Strategy, Strategy, error) {
	xp, err := New(x, deps)
	if err != nil {
		return nil, nil, fmt.Errorf("player X: %w", err)
	}
	if o == KindHuman && x == KindHuman {
		return xp, xp, nil
	}
	op, err := New(o, deps)
	if err != nil {
		return nil, nil, fmt.Errorf("player O: %w", err)
	}
	return xp, op, nil
}

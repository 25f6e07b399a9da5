package match

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/game"
)

var tracer = otel.Tracer("match")

// View shows the progress of a match. A nil View shows nothing.
type View interface {
	Board(b game.Board)
	Won(winner game.PlayerMark, turn int, b game.Board)
	Tied(b game.Board)
}

// Result is how a match ended.
type Result struct {
	Winner game.PlayerMark
	// Turns is the number of marks placed.
	Turns int
	Draw  bool
	Board game.Board
}

// Match runs one game between two strategies.
type Match struct {
	ID      string
	players map[game.PlayerMark]bot.Strategy
	first   game.PlayerMark
	view    View
}

// NewMatch creates a match where x and o choose moves for their marks and
// first moves first.
func NewMatch(x, o bot.Strategy, first game.PlayerMark, view View) *Match {
	return &Match{
		ID: uuid.New().String(),
		players: map[game.PlayerMark]bot.Strategy{
			game.PlayerX: x,
			game.PlayerO: o,
		},
		first: first,
		view:  view,
	}
}

// Play asks the players for moves in turn until someone completes a line or
// the board is full.
func (m *Match) Play(ctx context.Context) (Result, error) {
	ctx, span := tracer.Start(ctx, "match.Play", trace.WithAttributes(
		attribute.String("match.id", m.ID),
		attribute.String("match.first", string(m.first)),
	))
	defer span.End()

	log := slog.Default().With("match.id", m.ID)
	g := game.NewGame(m.first)
	log.InfoContext(ctx, "match started", "match.first", g.CurrentTurn)

	for !g.IsOver() {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Match canceled")
			return m.result(g), err
		}

		if m.view != nil {
			m.view.Board(g.Board)
		}

		mark := g.CurrentTurn
		cell, err := m.players[mark].SelectMove(ctx, mark, g.Board)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Player failed to move")
			return m.result(g), fmt.Errorf("player %s failed to move: %w", mark, err)
		}

		if err := g.Move(cell); err != nil {
			log.WarnContext(ctx, "illegal move from player", "player.mark", mark, "move.cell", cell, "error", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "Illegal move")
			return m.result(g), fmt.Errorf("player %s chose cell %d: %w", mark, cell+1, err)
		}
		log.DebugContext(ctx, "move played", "player.mark", mark, "move.cell", cell+1, "match.turn", g.Turn)
	}

	res := m.result(g)
	span.SetAttributes(
		attribute.String("match.winner", string(res.Winner)),
		attribute.Int("match.turns", res.Turns),
	)
	if m.view != nil {
		if res.Draw {
			m.view.Tied(res.Board)
		} else {
			m.view.Won(res.Winner, res.Turns, res.Board)
		}
	}
	log.InfoContext(ctx, "match finished", "match.winner", res.Winner, "match.turns", res.Turns, "match.draw", res.Draw)
	return res, nil
}

func (m *Match) result(g *game.Game) Result {
	return Result{
		Winner: g.Winner,
		Turns:  g.Turn,
		Draw:   g.IsDraw(),
		Board:  g.Board,
	}
}

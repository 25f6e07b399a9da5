package bot

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/solver"
)

var (
	tracer = otel.Tracer("bot")
	meter  = otel.Meter("bot")
)

// Eval plays the move the exhaustive search rates best.
type Eval struct {
	evaluator   *solver.Evaluator
	diagnostics io.Writer
	positions   metric.Int64Counter
}

// NewEval creates an Eval strategy. When diagnostics is not nil, the value
// of every candidate move and the chosen move are written to it.
func NewEval(e *solver.Evaluator, diagnostics io.Writer) *Eval {
	positions, err := meter.Int64Counter("bot.eval.positions",
		metric.WithDescription("Positions visited by the game-tree search"),
		metric.WithUnit("{position}"),
	)
	if err != nil {
		otel.Handle(err)
	}
	return &Eval{
		evaluator:   e,
		diagnostics: diagnostics,
		positions:   positions,
	}
}

// SelectMove searches the whole remaining game tree and returns the best
// cell. The value of the position is logged and traced but not returned.
func (s *Eval) SelectMove(ctx context.Context, mark game.PlayerMark, board game.Board) (int, error) {
	ctx, span := tracer.Start(ctx, "bot.Eval.SelectMove", trace.WithAttributes(
		attribute.String("player.mark", string(mark)),
		attribute.Int("board.empty", len(game.EmptyCells(board))),
	))
	defer span.End()

	before := s.evaluator.Visited()
	best, cands := s.evaluator.Analyze(mark, board)
	visited := int64(s.evaluator.Visited() - before)

	if s.positions != nil {
		s.positions.Add(ctx, visited, metric.WithAttributes(attribute.String("player.mark", string(mark))))
	}
	span.SetAttributes(
		attribute.Int("move.cell", best.Cell),
		attribute.String("move.outcome", best.Value.String()),
		attribute.Int64("search.positions", visited),
	)

	if best.Cell < 0 {
		span.RecordError(ErrNoMovesLeft)
		span.SetStatus(codes.Error, "No moves left")
		return -1, ErrNoMovesLeft
	}

	if s.diagnostics != nil {
		for _, c := range cands {
			fmt.Fprintf(s.diagnostics, "%d (%s)\n", c.Cell+1, c.Value)
		}
		fmt.Fprintf(s.diagnostics, "Best: %d (%s)\n", best.Cell+1, best.Value)
	}

	slog.DebugContext(ctx, "evaluator chose move",
		"player.mark", mark,
		"move.cell", best.Cell+1,
		"move.outcome", best.Value.String(),
		"search.positions", visited,
	)
	return best.Cell, nil
}

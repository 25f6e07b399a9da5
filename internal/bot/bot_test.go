package bot

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/solver"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"human", KindHuman},
		{"h", KindHuman},
		{"random", KindRandom},
		{"r", KindRandom},
		{"easy", KindRandom},
		{"randomsmart", KindRandomSmart},
		{"rs", KindRandomSmart},
		{"medium", KindRandomSmart},
		{"eval", KindEval},
		{"E", KindEval},
		{"hard", KindEval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Parse("minimax")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestNew(t *testing.T) {
	deps := Deps{Input: strings.NewReader(""), Output: &bytes.Buffer{}}

	for kind, want := range map[Kind]Strategy{
		KindHuman:       &Human{},
		KindRandom:      &Random{},
		KindRandomSmart: &RandomSmart{},
		KindEval:        &Eval{},
	} {
		s, err := New(kind, deps)
		require.NoError(t, err)
		assert.IsType(t, want, s)
	}

	_, err := New(Kind("oracle"), deps)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestHumanSelectMove(t *testing.T) {
	board := game.Board{x, n, n, n, o, n, n, n, n}
	in := strings.NewReader("abc\n12\n0\n1\n5\n 3 \n")
	var out bytes.Buffer

	cell, err := NewHuman(in, &out, nil).SelectMove(context.Background(), x, board)
	require.NoError(t, err)
	assert.Equal(t, 2, cell)

	transcript := out.String()
	assert.Equal(t, 6, strings.Count(transcript, "Player X, place your marker: "))
	assert.Equal(t, 1, strings.Count(transcript, "Invalid input."))
	assert.Equal(t, 2, strings.Count(transcript, "Outside the board.."))
	assert.Equal(t, 2, strings.Count(transcript, "Invalid move. Try again."))
}

func TestHumanEndOfInput(t *testing.T) {
	var out bytes.Buffer
	_, err := NewHuman(strings.NewReader("x\n"), &out, nil).SelectMove(context.Background(), o, game.Board{})
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestHumanCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHuman(strings.NewReader("1\n"), &bytes.Buffer{}, nil).SelectMove(ctx, x, game.Board{})
	assert.True(t, errors.Is(err, context.Canceled))
}

// countingView counts how often the board was drawn.
type countingView struct{ draws int }

func (v *countingView) Board(game.Board) { v.draws++ }

func TestHumanRedrawsAfterTakenCell(t *testing.T) {
	board := game.Board{x, n, n, n, o, n, n, n, n}
	view := &countingView{}

	h := NewHuman(strings.NewReader("1\nabc\n10\n5\n2\n"), &bytes.Buffer{}, nil).WithView(view)
	cell, err := h.SelectMove(context.Background(), x, board)
	require.NoError(t, err)
	assert.Equal(t, 1, cell)
	assert.Equal(t, 2, view.draws, "only taken cells redraw the board")
}

func TestNewHumanWiresBoardView(t *testing.T) {
	view := &countingView{}
	s, err := New(KindHuman, Deps{Input: strings.NewReader("1\n2\n"), Output: &bytes.Buffer{}, Board: view})
	require.NoError(t, err)

	cell, err := s.SelectMove(context.Background(), o, game.Board{0: x})
	require.NoError(t, err)
	assert.Equal(t, 1, cell)
	assert.Equal(t, 1, view.draws)
}

type bracketMarker struct{}

func (bracketMarker) Mark(m game.PlayerMark) string { return "[" + string(m) + "]" }

func TestHumanUsesMarker(t *testing.T) {
	var out bytes.Buffer
	_, err := NewHuman(strings.NewReader("9\n"), &out, bracketMarker{}).SelectMove(context.Background(), o, game.Board{})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Player [O], place your marker: ")
}

func TestEvalSelectMove(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(1, 2))

	t.Run("Takes the win over the block", func(t *testing.T) {
		var diag bytes.Buffer
		s := NewEval(solver.New(solver.WithRand(rng)), &diag)

		board := game.Board{
			x, x, n,
			o, o, n,
			n, n, n,
		}
		cell, err := s.SelectMove(ctx, x, board)
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
		assert.Equal(t, "Best: 3 (win in 0)\n", diag.String())
	})

	t.Run("Reports every candidate", func(t *testing.T) {
		var diag bytes.Buffer
		s := NewEval(solver.New(solver.WithRand(rng)), &diag)

		board := game.Board{
			x, o, x,
			n, o, n,
			n, n, n,
		}
		cell, err := s.SelectMove(ctx, x, board)
		require.NoError(t, err)
		assert.Equal(t, 7, cell, "X must block the middle column")

		lines := strings.Split(strings.TrimSpace(diag.String()), "\n")
		require.Len(t, lines, len(game.EmptyCells(board))+1)
		assert.Equal(t, "Best: 8 (draw)", lines[len(lines)-1])
	})

	t.Run("Full board", func(t *testing.T) {
		s := NewEval(solver.New(), nil)
		_, err := s.SelectMove(ctx, o, game.Board{x, o, x, x, o, o, o, x, x})
		assert.ErrorIs(t, err, ErrNoMovesLeft)
	})
}

func TestNewPlayersShareHumanPrompt(t *testing.T) {
	deps := Deps{Input: strings.NewReader("1\n2\n"), Output: &bytes.Buffer{}}

	xp, op, err := NewPlayers(KindHuman, KindHuman, deps)
	require.NoError(t, err)
	assert.Same(t, xp, op)

	ctx := context.Background()
	first, err := xp.SelectMove(ctx, x, game.Board{})
	require.NoError(t, err)
	second, err := op.SelectMove(ctx, o, game.Board{0: x})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, []int{first, second})

	xp, op, err = NewPlayers(KindEval, KindRandom, deps)
	require.NoError(t, err)
	assert.IsType(t, &Eval{}, xp)
	assert.IsType(t, &Random{}, op)

	_, _, err = NewPlayers(KindEval, Kind("nobody"), deps)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

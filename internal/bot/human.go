package bot

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ctchen222/tictactoe/internal/game"
)

var ErrNoInput = errors.New("no more input")

// Marker renders a player's mark for display.
type Marker interface {
	Mark(m game.PlayerMark) string
}

type plainMarker struct{}

func (plainMarker) Mark(m game.PlayerMark) string { return string(m) }

// BoardView draws the board for a player choosing again.
type BoardView interface {
	Board(b game.Board)
}

// Human asks a person for moves on a line-based terminal.
type Human struct {
	in    *bufio.Scanner
	out   io.Writer
	marks Marker
	view  BoardView
}

// NewHuman creates a Human strategy reading answers from in and writing
// prompts to out.
func NewHuman(in io.Reader, out io.Writer, marks Marker) *Human {
	if marks == nil {
		marks = plainMarker{}
	}
	return &Human{
		in:    bufio.NewScanner(in),
		out:   out,
		marks: marks,
	}
}

// WithView makes h redraw the board after the player picks a taken cell.
func (h *Human) WithView(v BoardView) *Human {
	h.view = v
	return h
}

// SelectMove prompts until the player names an empty cell from 1 to 9.
// It fails only when the input ends or ctx is done.
func (h *Human) SelectMove(ctx context.Context, mark game.PlayerMark, board game.Board) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}

		fmt.Fprintf(h.out, "Player %s, place your marker: ", h.marks.Mark(mark))
		if !h.in.Scan() {
			fmt.Fprintln(h.out)
			if err := h.in.Err(); err != nil {
				return -1, fmt.Errorf("failed to read move: %w", err)
			}
			return -1, ErrNoInput
		}

		n, err := strconv.Atoi(strings.TrimSpace(h.in.Text()))
		switch {
		case err != nil:
			fmt.Fprintln(h.out, "Invalid input.")
		case n < 1 || n > game.CellCount:
			fmt.Fprintln(h.out, "Outside the board..")
		case board[n-1] != game.None:
			fmt.Fprintln(h.out, "Invalid move. Try again.")
			if h.view != nil {
				h.view.Board(board)
			}
		default:
			return n - 1, nil
		}
	}
}

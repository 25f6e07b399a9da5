package bot

import (
	"context"
	"errors"
	"math/rand/v2"

	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/solver"
)

var ErrNoMovesLeft = errors.New("no moves left")

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

func orGlobal(src solver.Source) solver.Source {
	if src == nil {
		return globalRand{}
	}
	return src
}

// Random makes a completely random move.
type Random struct {
	rng solver.Source
}

// NewRandom creates a Random strategy. A nil src uses the process-wide source.
func NewRandom(src solver.Source) *Random {
	return &Random{rng: orGlobal(src)}
}

// SelectMove picks uniformly among the empty cells.
func (r *Random) SelectMove(_ context.Context, _ game.PlayerMark, board game.Board) (int, error) {
	return randomCell(r.rng, board)
}

func randomCell(rng solver.Source, board game.Board) (int, error) {
	availableMoves := game.EmptyCells(board)
	if len(availableMoves) == 0 {
		return -1, ErrNoMovesLeft
	}
	return availableMoves[rng.IntN(len(availableMoves))], nil
}

// RandomSmart will win if it can, block if it must, otherwise move randomly.
type RandomSmart struct {
	rng solver.Source
}

// NewRandomSmart creates a RandomSmart strategy. A nil src uses the
// process-wide source.
func NewRandomSmart(src solver.Source) *RandomSmart {
	return &RandomSmart{rng: orGlobal(src)}
}

// SelectMove returns a winning cell, else a blocking cell, else a random one.
func (r *RandomSmart) SelectMove(_ context.Context, mark game.PlayerMark, board game.Board) (int, error) {
	if cell, ok := findTacticalMove(board, mark); ok {
		return cell, nil
	}
	return randomCell(r.rng, board)
}

// findTacticalMove scans the win lines for a cell that wins for mark, or,
// failing that, one that stops the opponent from winning. A win found on
// any line takes priority over a block found earlier.
func findTacticalMove(board game.Board, mark game.PlayerMark) (int, bool) {
	block := -1
	for _, line := range game.WinLines {
		cell, mine, theirs, ok := game.OpenCell(board, line, mark)
		if !ok {
			continue
		}
		if mine == 2 {
			return cell, true
		}
		if theirs == 2 {
			block = cell
		}
	}
	return block, block != -1
}

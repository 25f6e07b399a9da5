// Package solver searches the complete tic-tac-toe game tree.
//
// The search has no pruning and no transposition table: the 3x3 tree has at
// most 9! leaves and is walked in full for every decision. Boards are passed
// by value, so sibling branches never share state.
package solver

import (
	"math/rand/v2"

	"ctchen222/tictactoe/internal/game"
)

// Source is the random source used to break ties between equally good
// moves. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Candidate is one legal move together with its value for the mover.
type Candidate struct {
	Cell  int
	Value Outcome
}

// Evaluator picks optimal moves by exhaustive search.
// An Evaluator is not safe for concurrent use.
type Evaluator struct {
	rng      Source
	shortcut bool
	visited  uint64
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithRand makes tie-breaks draw from src instead of the process-wide source.
func WithRand(src Source) Option {
	return func(e *Evaluator) {
		if src != nil {
			e.rng = src
		}
	}
}

// WithoutShortcut turns off the immediate-win scan and lets the recursion
// discover winning moves on its own.
func WithoutShortcut() Option {
	return func(e *Evaluator) {
		e.shortcut = false
	}
}

// New creates an Evaluator.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		rng:      globalSource{},
		shortcut: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate returns the best cell for mover on board and its value. depth is
// the number of plies already played below the root of the search and is
// used as the distance of any win or loss found.
//
// A full board evaluates to a draw with cell -1. The board must not already
// have a winner.
func (e *Evaluator) Evaluate(mover game.PlayerMark, board game.Board, depth int) (int, Outcome) {
	best, _ := e.search(mover, board, depth)
	return best.Cell, best.Value
}

// Analyze evaluates board like Evaluate at depth 0 and also returns the
// value of every move it ranked, in cell order. The candidates are empty
// when an immediate win made ranking unnecessary.
func (e *Evaluator) Analyze(mover game.PlayerMark, board game.Board) (Candidate, []Candidate) {
	return e.search(mover, board, 0)
}

// Select returns the best of cands, choosing uniformly among exact ties.
// ok is false when cands is empty.
func (e *Evaluator) Select(cands []Candidate) (Candidate, bool) {
	return e.pick(cands)
}

// Visited returns the number of positions searched since the Evaluator was
// created.
func (e *Evaluator) Visited() uint64 {
	return e.visited
}

func (e *Evaluator) search(mover game.PlayerMark, board game.Board, depth int) (Candidate, []Candidate) {
	e.visited++

	if e.shortcut {
		if cell, ok := ImmediateWin(mover, board); ok {
			return Candidate{Cell: cell, Value: Win(depth)}, nil
		}
	}

	cands := e.candidates(mover, board, depth)
	best, ok := e.pick(cands)
	if !ok {
		return Candidate{Cell: -1, Value: Draw()}, nil
	}
	return best, cands
}

func (e *Evaluator) candidates(mover game.PlayerMark, board game.Board, depth int) []Candidate {
	empty := game.EmptyCells(board)
	cands := make([]Candidate, 0, len(empty))
	for _, cell := range empty {
		child := game.Place(board, cell, mover)

		var value Outcome
		if game.HasWinner(child) {
			// Only reachable without the shortcut: the move completes a line.
			value = Win(depth)
		} else {
			_, reply := e.Evaluate(mover.Opponent(), child, depth+1)
			value = reply.Neg()
		}
		cands = append(cands, Candidate{Cell: cell, Value: value})
	}
	return cands
}

func (e *Evaluator) pick(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{Cell: -1}, false
	}

	best := cands[0]
	ties := 1
	for _, c := range cands[1:] {
		switch c.Value.Compare(best.Value) {
		case 1:
			best, ties = c, 1
		case 0:
			// Reservoir sampling keeps each tied move with probability 1/ties.
			ties++
			if e.rng.IntN(ties) == 0 {
				best = c
			}
		}
	}
	return best, true
}

// ImmediateWin returns a cell that completes a line for mover, scanning the
// win lines in order.
func ImmediateWin(mover game.PlayerMark, board game.Board) (int, bool) {
	for _, line := range game.WinLines {
		if cell, mine, _, ok := game.OpenCell(board, line, mover); ok && mine == 2 {
			return cell, true
		}
	}
	return -1, false
}

package game

import (
	"errors"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// CellCount is the number of cells on the board.
	CellCount = 9
)

var (
	ErrGameFinished = errors.New("game already finished")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell already occupied")
)

// Opponent returns the other player. None has no opponent and is returned as is.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return None
	}
}

// Game tracks a single match on one board.
type Game struct {
	Board       Board
	CurrentTurn PlayerMark
	Winner      PlayerMark
	// Turn is the number of marks placed so far.
	Turn int
}

// NewGame creates an empty game where first moves first.
func NewGame(first PlayerMark) *Game {
	if first != PlayerO {
		first = PlayerX
	}
	return &Game{
		CurrentTurn: first,
		Winner:      None,
	}
}

// Move places the current player's mark on cell index and passes the turn.
func (g *Game) Move(index int) error {
	if g.IsOver() {
		return ErrGameFinished
	}
	if index < 0 || index >= CellCount {
		return ErrInvalidCell
	}
	if g.Board[index] != None {
		return ErrCellOccupied
	}

	g.Board[index] = g.CurrentTurn
	g.Turn++

	g.Winner = Winner(g.Board)
	if g.Winner == None {
		g.CurrentTurn = g.CurrentTurn.Opponent()
	}
	return nil
}

// IsDraw checks if the game is a draw.
func (g *Game) IsDraw() bool {
	// If there is a winner, it's not a draw
	if g.Winner != None {
		return false
	}
	return IsFull(g.Board)
}

// IsOver reports whether no more moves can be made.
func (g *Game) IsOver() bool {
	return g.Winner != None || IsFull(g.Board)
}

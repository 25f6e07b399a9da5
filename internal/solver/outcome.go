package solver

import (
	"cmp"
	"fmt"
)

// Kind is the game-theoretic result of a position.
type Kind uint8

const (
	KindDraw Kind = iota
	KindLoss
	KindWin
)

// rank orders kinds from worst to best for the player to move.
func (k Kind) rank() int {
	switch k {
	case KindLoss:
		return 0
	case KindWin:
		return 2
	default:
		return 1
	}
}

// Outcome is the value of a position for the player to move: a win or loss
// Plies moves after the root of the search, or a draw. The zero value is a
// draw.
type Outcome struct {
	Kind  Kind
	Plies int
}

// Draw returns the outcome of a drawn position.
func Draw() Outcome {
	return Outcome{Kind: KindDraw}
}

// Win returns a win reached at the given ply.
func Win(plies int) Outcome {
	return Outcome{Kind: KindWin, Plies: plies}
}

// Loss returns a loss reached at the given ply.
func Loss(plies int) Outcome {
	return Outcome{Kind: KindLoss, Plies: plies}
}

// Compare returns -1, 0 or +1 depending on whether o is worse than, as good
// as, or better than other for the player to move. Any win beats a draw,
// which beats any loss. Earlier wins and later losses are better.
func (o Outcome) Compare(other Outcome) int {
	if r, s := o.Kind.rank(), other.Kind.rank(); r != s {
		return cmp.Compare(r, s)
	}
	switch o.Kind {
	case KindWin:
		return cmp.Compare(other.Plies, o.Plies)
	case KindLoss:
		return cmp.Compare(o.Plies, other.Plies)
	default:
		return 0
	}
}

// Less reports whether o is strictly worse than other.
func (o Outcome) Less(other Outcome) bool {
	return o.Compare(other) < 0
}

// Equal reports whether o and other rank the same.
func (o Outcome) Equal(other Outcome) bool {
	return o.Compare(other) == 0
}

// Neg converts an outcome to the opponent's point of view.
func (o Outcome) Neg() Outcome {
	switch o.Kind {
	case KindWin:
		return Loss(o.Plies)
	case KindLoss:
		return Win(o.Plies)
	default:
		return Draw()
	}
}

func (o Outcome) String() string {
	switch o.Kind {
	case KindWin:
		return fmt.Sprintf("win in %d", o.Plies)
	case KindLoss:
		return fmt.Sprintf("loss in %d", o.Plies)
	default:
		return "draw"
	}
}

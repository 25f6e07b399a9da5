// Package render draws the board and game messages on a terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"ctchen222/tictactoe/internal/game"
)

// tab indents every board row.
const tab = "         "

const clearScreen = "\x1b[2J"

// Terminal writes the game to a text stream.
type Terminal struct {
	out   io.Writer
	color bool
	x, o  *color.Color
}

// NewTerminal creates a Terminal writing to out. Colors are used only when
// enabled and out is a terminal.
func NewTerminal(out io.Writer, enableColor bool) *Terminal {
	if enableColor {
		if f, ok := out.(*os.File); !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			enableColor = false
		}
	}

	t := &Terminal{
		out:   out,
		color: enableColor,
		x:     color.New(color.FgBlue, color.Bold),
		o:     color.New(color.FgYellow, color.Bold),
	}
	if enableColor {
		t.x.EnableColor()
		t.o.EnableColor()
	} else {
		t.x.DisableColor()
		t.o.DisableColor()
	}
	return t
}

// Mark returns m as it appears on screen.
func (t *Terminal) Mark(m game.PlayerMark) string {
	switch m {
	case game.PlayerX:
		return t.x.Sprint(string(m))
	case game.PlayerO:
		return t.o.Sprint(string(m))
	default:
		return string(m)
	}
}

func (t *Terminal) cell(b game.Board, i int) string {
	if b[i] == game.None {
		return strconv.Itoa(i + 1)
	}
	return t.Mark(b[i])
}

// Board draws b. Empty cells show the number a player types to take them.
func (t *Terminal) Board(b game.Board) {
	const rowDivider = tab + "--- --- ---"

	fmt.Fprintln(t.out)
	for row := 0; row < 3; row++ {
		if row > 0 {
			fmt.Fprintln(t.out, rowDivider)
		}
		off := row * 3
		fmt.Fprintf(t.out, "%s %s | %s | %s\n", tab, t.cell(b, off), t.cell(b, off+1), t.cell(b, off+2))
	}
	fmt.Fprintln(t.out)
}

// Won clears the screen, announces the winner and shows the final board.
func (t *Terminal) Won(winner game.PlayerMark, turn int, b game.Board) {
	if t.color {
		fmt.Fprint(t.out, clearScreen)
	}
	fmt.Fprintf(t.out, "Player %s wins on move %d!!\n", t.Mark(winner), turn)
	t.Board(b)
}

// Tied announces a drawn game.
func (t *Terminal) Tied(b game.Board) {
	t.Board(b)
	fmt.Fprintln(t.out, "Turns out there are no available spots left.")
	fmt.Fprintln(t.out, "Game has tied.")
}

// Bye ends the session.
func (t *Terminal) Bye() {
	fmt.Fprintln(t.out, "Bye!")
}

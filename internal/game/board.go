package game

// Board is a 3x3 grid stored row-major. Cell i is at row i/3, column i%3.
type Board [CellCount]PlayerMark

// WinLines are the rows, columns and diagonals that win the game.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{0, 4, 8},
	{1, 4, 7},
	{2, 5, 8},
	{2, 4, 6},
}

// EmptyCells returns the unoccupied cells in ascending order.
func EmptyCells(b Board) []int {
	cells := make([]int, 0, CellCount)
	for i, cell := range b {
		if cell == None {
			cells = append(cells, i)
		}
	}
	return cells
}

// Place returns a copy of b with mark on cell index. The cell is not checked.
func Place(b Board, index int, mark PlayerMark) Board {
	b[index] = mark
	return b
}

// Winner returns the player owning a completed line, or None.
func Winner(b Board) PlayerMark {
	for _, line := range WinLines {
		a := b[line[0]]
		if a != None && a == b[line[1]] && a == b[line[2]] {
			return a
		}
	}
	return None
}

// HasWinner reports whether any line is held entirely by one player.
func HasWinner(b Board) bool {
	return Winner(b) != None
}

// IsFull reports whether every cell is occupied.
func IsFull(b Board) bool {
	for _, cell := range b {
		if cell == None {
			return false
		}
	}
	return true
}

// OpenCell inspects one win line from mark's point of view. It returns the
// line's only empty cell together with how many of the other two cells mark
// and its opponent hold. ok is false when the line is full or has more than
// one empty cell.
func OpenCell(b Board, line [3]int, mark PlayerMark) (cell, mine, theirs int, ok bool) {
	cell = -1
	for _, i := range line {
		switch b[i] {
		case None:
			if cell != -1 {
				return -1, 0, 0, false
			}
			cell = i
		case mark:
			mine++
		default:
			theirs++
		}
	}
	if cell == -1 {
		return -1, 0, 0, false
	}
	return cell, mine, theirs, true
}

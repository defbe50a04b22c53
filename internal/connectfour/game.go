package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-scoreboard/internal/apperror"
)

const (
	Rows = 6
	Cols = 7

	winLength = 4
)

// Cell is the content of a board square, which is also the mark of a player.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Other returns the opponent's mark.
func (c Cell) Other() Cell {
	if c == X {
		return O
	}
	return X
}

type Status uint8

const (
	InProgress Status = iota
	Won
	Draw
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Board is stored row-major with row 0 at the top.
type Board [Rows][Cols]Cell

// axes are the four lines through a cell: horizontal, vertical and both diagonals.
var axes = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Game holds the state of one match. X always moves first.
type Game struct {
	board  Board
	turn   Cell
	status Status
	winner Cell
	moves  int
}

func NewGame() *Game {
	return &Game{turn: X}
}

// MakeMove drops the current player's mark into col. The disc lands on the
// lowest empty row. A rejected move leaves the game untouched.
func (that *Game) MakeMove(col int) error {
	if that.status != InProgress {
		return apperror.ErrGameFinished
	}

	if col < 0 || col >= Cols {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidColumn, col)
	}

	row := that.dropRow(col)
	if row < 0 {
		return fmt.Errorf("%w: %d", apperror.ErrColumnFull, col)
	}

	that.board[row][col] = that.turn
	that.moves++

	switch {
	case that.isWinningMove(row, col):
		that.status = Won
		that.winner = that.turn
	case that.isFull():
		that.status = Draw
	default:
		that.turn = that.turn.Other()
	}

	return nil
}

func (that *Game) dropRow(col int) int {
	for row := Rows - 1; row >= 0; row-- {
		if that.board[row][col] == Empty {
			return row
		}
	}
	return -1
}

// isWinningMove looks only at the lines through the last placed disc.
func (that *Game) isWinningMove(row, col int) bool {
	mark := that.board[row][col]

	for _, d := range axes {
		count := 1 + that.countFrom(row, col, d[0], d[1], mark) + that.countFrom(row, col, -d[0], -d[1], mark)
		if count >= winLength {
			return true
		}
	}

	return false
}

// countFrom counts consecutive mark cells starting next to (row, col) in direction (dr, dc).
func (that *Game) countFrom(row, col, dr, dc int, mark Cell) int {
	count := 0
	r, c := row+dr, col+dc

	for r >= 0 && r < Rows && c >= 0 && c < Cols && that.board[r][c] == mark {
		count++
		r += dr
		c += dc
	}

	return count
}

// isFull checks the top row; columns fill bottom-up, so it is the last to fill.
func (that *Game) isFull() bool {
	for col := 0; col < Cols; col++ {
		if that.board[0][col] == Empty {
			return false
		}
	}
	return true
}

func (that *Game) IsGameOver() bool {
	return that.status != InProgress
}

func (that *Game) Status() Status {
	return that.status
}

// Winner returns the winning mark, or Empty while in progress or after a draw.
func (that *Game) Winner() Cell {
	return that.winner
}

// CurrentMark returns the mark of the player to move. After the game ends it
// is the mark of the player who made the last move.
func (that *Game) CurrentMark() Cell {
	return that.turn
}

func (that *Game) Moves() int {
	return that.moves
}

// Cell returns the content of (row, col), Empty when out of range.
func (that *Game) Cell(row, col int) Cell {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return Empty
	}
	return that.board[row][col]
}

// Board returns a copy of the grid.
func (that *Game) Board() Board {
	return that.board
}

package connectfour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-scoreboard/internal/apperror"
)

// drawSequence fills all 42 cells without four in a row.
var drawSequence = []int{
	0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 1, 1,
	2, 2, 2, 2, 2, 2,
	4, 3, 3, 3, 3, 3, 3,
	4, 4, 4, 4, 4,
	5, 5, 5, 5, 5, 5,
	6, 6, 6, 6, 6, 6,
}

func playMoves(t *testing.T, game *Game, cols ...int) {
	t.Helper()

	for i, col := range cols {
		require.NoError(t, game.MakeMove(col), "move %d (column %d)", i, col)
	}
}

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame()

	// Then: the board is empty and X is to move
	assert.Equal(t, Board{}, game.Board())
	assert.Equal(t, X, game.CurrentMark())
	assert.Equal(t, InProgress, game.Status())
	assert.Equal(t, Empty, game.Winner())
	assert.False(t, game.IsGameOver())
	assert.Zero(t, game.Moves())
}

func TestGame_MakeMove(t *testing.T) {
	t.Run("Disc falls to the bottom and the turn passes", func(t *testing.T) {
		// Given: a new game
		game := NewGame()

		// When: X and O play the same column
		playMoves(t, game, 3, 3)

		// Then: discs stack bottom-up
		assert.Equal(t, X, game.Cell(Rows-1, 3))
		assert.Equal(t, O, game.Cell(Rows-2, 3))
		assert.Equal(t, X, game.CurrentMark())
		assert.Equal(t, 2, game.Moves())
	})

	t.Run("Out of range column is rejected", func(t *testing.T) {
		game := NewGame()

		for _, col := range []int{-1, Cols, 42} {
			err := game.MakeMove(col)
			require.ErrorIs(t, err, apperror.ErrInvalidColumn)
		}

		assert.Equal(t, Board{}, game.Board())
		assert.Equal(t, X, game.CurrentMark())
		assert.Zero(t, game.Moves())
	})

	t.Run("Full column is rejected without side effects", func(t *testing.T) {
		// Given: column 0 filled by alternating moves
		game := NewGame()
		playMoves(t, game, 0, 0, 0, 0, 0, 0)
		before := game.Board()
		turn := game.CurrentMark()

		// When: a seventh disc goes into column 0
		err := game.MakeMove(0)

		// Then: the move fails and nothing changes
		require.ErrorIs(t, err, apperror.ErrColumnFull)
		assert.Equal(t, before, game.Board())
		assert.Equal(t, turn, game.CurrentMark())
		assert.Equal(t, 6, game.Moves())
		assert.False(t, game.IsGameOver())
	})
}

func TestGame_Win(t *testing.T) {
	tests := []struct {
		name   string
		moves  []int
		winner Cell
	}{
		{name: "horizontal", moves: []int{0, 0, 1, 1, 2, 2, 3}, winner: X},
		{name: "vertical", moves: []int{3, 4, 3, 4, 3, 4, 3}, winner: X},
		{name: "rising diagonal", moves: []int{0, 1, 1, 2, 2, 3, 2, 3, 3, 6, 3}, winner: X},
		{name: "falling diagonal", moves: []int{6, 5, 5, 4, 4, 3, 4, 3, 3, 0, 3}, winner: X},
		{name: "second player", moves: []int{0, 1, 0, 2, 6, 3, 6, 4}, winner: O},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a new game
			game := NewGame()

			// When: the winning sequence is played
			playMoves(t, game, tt.moves...)

			// Then: the last mover wins and keeps the turn
			assert.True(t, game.IsGameOver())
			assert.Equal(t, Won, game.Status())
			assert.Equal(t, tt.winner, game.Winner())
			assert.Equal(t, tt.winner, game.CurrentMark())
			assert.Equal(t, len(tt.moves), game.Moves())
		})
	}
}

func TestGame_FourInOneColumnBySamePlayer(t *testing.T) {
	// Given: an empty board where X is forced to move every time
	game := NewGame()

	for i := 0; i < 3; i++ {
		game.turn = X
		require.NoError(t, game.MakeMove(3))
		require.False(t, game.IsGameOver())
	}

	// When: X drops the fourth disc in column 3
	game.turn = X
	require.NoError(t, game.MakeMove(3))

	// Then: the vertical line wins
	assert.Equal(t, Won, game.Status())
	assert.Equal(t, X, game.Winner())
}

func TestGame_Draw(t *testing.T) {
	// Given: a new game
	game := NewGame()

	// When: every cell is filled without a line of four
	for i, col := range drawSequence {
		require.False(t, game.IsGameOver(), "game ended early at move %d", i)
		require.NoError(t, game.MakeMove(col))
	}

	// Then: the game is a draw
	assert.True(t, game.IsGameOver())
	assert.Equal(t, Draw, game.Status())
	assert.Equal(t, Empty, game.Winner())
	assert.Equal(t, Rows*Cols, game.Moves())
}

func TestGame_FinishedGameRejectsMoves(t *testing.T) {
	// Given: a game X has already won
	game := NewGame()
	playMoves(t, game, 0, 0, 1, 1, 2, 2, 3)
	before := game.Board()

	// When: another move is attempted
	err := game.MakeMove(5)

	// Then: it is rejected and the board is unchanged
	require.ErrorIs(t, err, apperror.ErrGameFinished)
	assert.Equal(t, before, game.Board())
	assert.Equal(t, X, game.Winner())
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "X", X.String())
	assert.Equal(t, "O", O.String())
	assert.Equal(t, " ", Empty.String())
	assert.Equal(t, O, X.Other())
	assert.Equal(t, X, O.Other())
	assert.Equal(t, "draw", Draw.String())
	assert.Equal(t, Empty, NewGame().Cell(-1, 9))
}

package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/connectfour-scoreboard/internal/connectfour"
)

// RenderBoard writes the grid top row first, with column numbers on top.
func RenderBoard(w io.Writer, board connectfour.Board) {
	var sb strings.Builder

	for col := 0; col < connectfour.Cols; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteString("\n")

	separator := strings.Repeat("-", 2*connectfour.Cols+1) + "\n"
	sb.WriteString(separator)

	for row := 0; row < connectfour.Rows; row++ {
		sb.WriteString("|")
		for col := 0; col < connectfour.Cols; col++ {
			sb.WriteString(board[row][col].String())
			sb.WriteString("|")
		}
		sb.WriteString("\n")
		sb.WriteString(separator)
	}

	_, _ = io.WriteString(w, sb.String())
}

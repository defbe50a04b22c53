package entity

import (
	"time"

	"github.com/google/uuid"
)

// GameResult is the outcome of one finished game. For a draw Winner and
// Loser are simply the two participants.
type GameResult struct {
	ID       string    `json:"id"`
	Winner   string    `json:"winner"`
	Loser    string    `json:"loser"`
	Draw     bool      `json:"draw"`
	Moves    int       `json:"moves"`
	PlayedAt time.Time `json:"played_at"`
}

func NewGameResult(winner, loser string, draw bool, moves int) *GameResult {
	return &GameResult{
		ID:       uuid.NewString(),
		Winner:   winner,
		Loser:    loser,
		Draw:     draw,
		Moves:    moves,
		PlayedAt: time.Now().UTC(),
	}
}

// Participants returns both player names, winner first.
func (that *GameResult) Participants() (string, string) {
	return that.Winner, that.Loser
}

package entity

import "fmt"

// Player holds the per-session record of a single player.
type Player struct {
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Draws  int    `json:"draws"`
	Losses int    `json:"losses"`
}

func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

func (that *Player) AddWin()  { that.Wins++ }
func (that *Player) AddDraw() { that.Draws++ }
func (that *Player) AddLoss() { that.Losses++ }

// Games returns the number of games the player has finished.
func (that *Player) Games() int {
	return that.Wins + that.Draws + that.Losses
}

// WinRate returns wins divided by games played, or 0 before the first game.
func (that *Player) WinRate() float64 {
	total := that.Games()
	if total == 0 {
		return 0
	}
	return float64(that.Wins) / float64(total)
}

func (that *Player) String() string {
	return fmt.Sprintf("%s - Wins: %d, Draws: %d, Losses: %d, Win rate: %.1f%%",
		that.Name, that.Wins, that.Draws, that.Losses, that.WinRate()*100)
}

package scoreboard

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/rocketscienceinc/connectfour-scoreboard/internal/apperror"
	"github.com/rocketscienceinc/connectfour-scoreboard/internal/bst"
	"github.com/rocketscienceinc/connectfour-scoreboard/internal/entity"
	"github.com/rocketscienceinc/connectfour-scoreboard/internal/hashtable"
)

// Scoreboard owns the player records. winTree only holds names, each filed
// under its current win count; keys with no names are removed.
// Scoreboard is not safe for concurrent use; each session owns its own.
type Scoreboard struct {
	logger *slog.Logger

	players     *hashtable.Table[string, *entity.Player]
	winTree     *bst.Tree[int, []string]
	playedGames int
}

// New returns an empty scoreboard whose player table has the given number of
// buckets (hashtable.DefaultBuckets when buckets <= 0).
func New(logger *slog.Logger, buckets int) *Scoreboard {
	return &Scoreboard{
		logger:  logger.With("component", "scoreboard"),
		players: hashtable.New[string, *entity.Player](buckets),
		winTree: bst.New[int, []string](),
	}
}

// RegisterPlayer adds a player with an empty record. Registering a known
// name does nothing.
func (that *Scoreboard) RegisterPlayer(name string) error {
	if name == "" {
		return apperror.ErrEmptyName
	}

	if that.players.Contains(name) {
		return nil
	}

	player := entity.NewPlayer(name)
	that.players.Put(name, player)
	that.addToWinTree(player)

	that.logger.Debug("player registered", "player", name)

	return nil
}

// AddGameResult records a finished game between two registered players.
// When draw is true both players get a draw, otherwise winner gets a win and
// loser a loss. Nothing changes when either player is unknown.
func (that *Scoreboard) AddGameResult(winner, loser string, draw bool) error {
	if winner == loser {
		return fmt.Errorf("%w: %q", apperror.ErrSamePlayer, winner)
	}

	p1, ok := that.players.Get(winner)
	if !ok {
		return fmt.Errorf("%w: %q", apperror.ErrPlayerNotRegistered, winner)
	}

	p2, ok := that.players.Get(loser)
	if !ok {
		return fmt.Errorf("%w: %q", apperror.ErrPlayerNotRegistered, loser)
	}

	that.playedGames++

	// the index is keyed by wins, so entries must go before the counters move
	that.removeFromWinTree(p1)
	that.removeFromWinTree(p2)

	if draw {
		p1.AddDraw()
		p2.AddDraw()
	} else {
		p1.AddWin()
		p2.AddLoss()
	}

	that.addToWinTree(p1)
	that.addToWinTree(p2)

	that.logger.Debug("game result recorded",
		"winner", winner, "loser", loser, "draw", draw, "played_games", that.playedGames)

	return nil
}

// AddResult records a GameResult.
func (that *Scoreboard) AddResult(result *entity.GameResult) error {
	winner, loser := result.Participants()
	return that.AddGameResult(winner, loser, result.Draw)
}

func (that *Scoreboard) addToWinTree(player *entity.Player) {
	names, _ := that.winTree.Get(player.Wins)
	that.winTree.Put(player.Wins, append(names, player.Name))
}

func (that *Scoreboard) removeFromWinTree(player *entity.Player) {
	names, ok := that.winTree.Get(player.Wins)
	if !ok {
		return
	}

	i := slices.Index(names, player.Name)
	if i < 0 {
		return
	}

	names = slices.Delete(names, i, i+1)
	if len(names) == 0 {
		that.winTree.Delete(player.Wins)
		return
	}

	that.winTree.Put(player.Wins, names)
}

// Player returns a copy of the named player's record.
func (that *Scoreboard) Player(name string) (entity.Player, bool) {
	player, ok := that.players.Get(name)
	if !ok {
		return entity.Player{}, false
	}
	return *player, true
}

func (that *Scoreboard) PlayedGames() int {
	return that.playedGames
}

func (that *Scoreboard) PlayerCount() int {
	return that.players.Len()
}

// PlayersWithWins returns the names filed under exactly wins, in the order
// they reached that count.
func (that *Scoreboard) PlayersWithWins(wins int) []string {
	names, _ := that.winTree.Get(wins)
	return slices.Clone(names)
}

// WinCounts returns the distinct win counts currently held, ascending.
func (that *Scoreboard) WinCounts() []int {
	return that.winTree.Keys()
}

// AtLeast returns the names of every player with at least minWins wins,
// best first.
func (that *Scoreboard) AtLeast(minWins int) []string {
	from, ok := that.winTree.Ceiling(minWins)
	if !ok {
		return nil
	}

	var names []string
	keys := that.winTree.Keys()
	for i := len(keys) - 1; i >= 0 && keys[i] >= from; i-- {
		bucket, _ := that.winTree.Get(keys[i])
		names = append(names, bucket...)
	}

	return names
}

// Standings returns every player ordered by wins, highest first. Players with
// the same number of wins keep the order in which they reached it.
func (that *Scoreboard) Standings() []entity.Player {
	standings := make([]entity.Player, 0, that.players.Len())

	for _, name := range that.AtLeast(0) {
		if player, ok := that.players.Get(name); ok {
			standings = append(standings, *player)
		}
	}

	return standings
}

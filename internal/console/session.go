package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectfour-scoreboard/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-scoreboard/internal/entity"
)

type scoreBoard interface {
	RegisterPlayer(name string) error
	AddResult(result *entity.GameResult) error
	Standings() []entity.Player
}

type resultRecorder interface {
	Save(ctx context.Context, result *entity.GameResult) error
}

type Session struct {
	logger *slog.Logger

	in  *bufio.Reader
	out io.Writer

	scoreboard scoreBoard
	results    resultRecorder
}

// New returns a session reading answers from in and writing prompts to out.
// results may be nil, in which case finished games are only kept on the
// scoreboard.
func New(logger *slog.Logger, in io.Reader, out io.Writer, scoreboard scoreBoard, results resultRecorder) *Session {
	return &Session{
		logger:     logger.With("component", "console"),
		in:         bufio.NewReader(in),
		out:        out,
		scoreboard: scoreboard,
		results:    results,
	}
}

// Run asks for two player names and plays games until the players stop or
// the input ends. End of input is not an error.
func (that *Session) Run(ctx context.Context) error {
	err := that.run(ctx)
	if errors.Is(err, io.EOF) {
		that.println()
		return nil
	}

	return err
}

func (that *Session) run(ctx context.Context) error {
	first, err := that.askName("Nombre Jugador 1 ", "")
	if err != nil {
		return err
	}

	second, err := that.askName("Nombre Jugador 2 ", first)
	if err != nil {
		return err
	}

	for _, name := range []string{first, second} {
		if err = that.scoreboard.RegisterPlayer(name); err != nil {
			return fmt.Errorf("failed to register player: %w", err)
		}
	}

	playerX, playerO := first, second
	for {
		result, err := that.PlayGame(ctx, playerX, playerO)
		if err != nil {
			return err
		}

		if err = that.record(ctx, result); err != nil {
			return err
		}

		that.printStandings()

		again, err := that.askYesNo("¿Otra partida? (s/n) ")
		if err != nil || !again {
			return err
		}

		// the other player opens the next game
		playerX, playerO = playerO, playerX
	}
}

// PlayGame plays a single game, playerX moving first, and returns its result.
func (that *Session) PlayGame(ctx context.Context, playerX, playerO string) (*entity.GameResult, error) {
	log := that.logger.With("method", "PlayGame")

	names := map[connectfour.Cell]string{
		connectfour.X: playerX,
		connectfour.O: playerO,
	}

	that.printf("Nueva partida: %s (X) vs %s (O)\n", playerX, playerO)

	game := connectfour.NewGame()
	for !game.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		RenderBoard(that.out, game.Board())

		mark := game.CurrentMark()
		that.printf("%s (%s), elige columna (0-6): ", names[mark], mark)

		line, err := that.readLine()
		if err != nil {
			return nil, err
		}

		col, err := strconv.Atoi(line)
		if err != nil {
			that.println("Debes ingresar un número entre 0 y 6.")
			continue
		}

		if err = game.MakeMove(col); err != nil {
			log.Debug("move rejected", "player", names[mark], "column", col, "error", err)
			that.println("invalido, Intenta de nuevo.")
		}
	}

	RenderBoard(that.out, game.Board())

	var result *entity.GameResult
	if winner := game.Winner(); winner != connectfour.Empty {
		that.printf("%s gana\n", names[winner])
		result = entity.NewGameResult(names[winner], names[winner.Other()], false, game.Moves())
	} else {
		that.println("¡Empate!")
		result = entity.NewGameResult(playerX, playerO, true, game.Moves())
	}

	log.Info("game finished", "winner", result.Winner, "loser", result.Loser, "draw", result.Draw, "moves", result.Moves)

	return result, nil
}

func (that *Session) record(ctx context.Context, result *entity.GameResult) error {
	if err := that.scoreboard.AddResult(result); err != nil {
		return fmt.Errorf("failed to record game result: %w", err)
	}

	if that.results == nil {
		return nil
	}

	// the feed is best effort; the session goes on without it
	if err := that.results.Save(ctx, result); err != nil {
		that.logger.Error("could not publish game result", "result_id", result.ID, "error", err)
	}

	return nil
}

func (that *Session) printStandings() {
	that.println("Tabla de posiciones:")
	for i, player := range that.scoreboard.Standings() {
		that.printf("%d. %s\n", i+1, player.String())
	}
}

func (that *Session) askName(prompt, taken string) (string, error) {
	for {
		that.printf("%s", prompt)

		name, err := that.readLine()
		if err != nil {
			return "", err
		}

		switch {
		case name == "":
			that.println("El nombre no puede estar vacío.")
		case name == taken:
			that.println("Los jugadores deben tener nombres distintos.")
		default:
			return name, nil
		}
	}
}

func (that *Session) askYesNo(prompt string) (bool, error) {
	that.printf("%s", prompt)

	answer, err := that.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "s", "si", "sí", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// readLine returns the next trimmed input line, or io.EOF once input ends.
// Lines have no length limit; an unterminated last line is still returned.
func (that *Session) readLine() (string, error) {
	line, err := that.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}

	return strings.TrimSpace(line), nil
}

func (that *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

func (that *Session) println(line ...any) {
	_, _ = fmt.Fprintln(that.out, line...)
}

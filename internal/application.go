package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/connectfour-scoreboard/internal/config"
	"github.com/rocketscienceinc/connectfour-scoreboard/internal/console"
	"github.com/rocketscienceinc/connectfour-scoreboard/internal/repository"
	"github.com/rocketscienceinc/connectfour-scoreboard/internal/repository/storage"
	"github.com/rocketscienceinc/connectfour-scoreboard/internal/scoreboard"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs a console session on in and out.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	var results repository.ResultRepository

	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisClient, err := storage.NewRedis(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisClient.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		results = repository.NewResultRepository(redisClient, conf.Redis.Channel)
		log.Info("Publishing game results", "addr", redisAddrString, "channel", conf.Redis.Channel)
	}

	board := scoreboard.New(logger, conf.Scoreboard.Buckets)
	session := console.New(logger, in, out, board, results)

	log.Info("Starting console session", "buckets", conf.Scoreboard.Buckets)

	if err := session.Run(ctx); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	log.Info("Session finished", "players", board.PlayerCount(), "played_games", board.PlayedGames())

	return nil
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/connectfour-scoreboard/internal"
	"github.com/rocketscienceinc/connectfour-scoreboard/internal/config"
	"github.com/rocketscienceinc/connectfour-scoreboard/internal/hashtable"
	"github.com/rocketscienceinc/connectfour-scoreboard/internal/logger"
)

// main - is the entry point of the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		buckets    int
	)

	cmd := &cobra.Command{
		Use:   "connectfour",
		Short: "Two-player Connect Four with a session scoreboard",
		Long: `Plays Connect Four matches between two players on the console and keeps
a scoreboard of wins, draws and losses for the session.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := config.MustLoad(configPath)

			if cmd.Flags().Changed("buckets") {
				conf.Scoreboard.Buckets = buckets
			}

			log := logger.New(os.Stderr, conf.LogLevel, conf.LogFormat)

			if err := app.RunApp(cmd.Context(), log, conf, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				log.Error("app run failed", "error", err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "./config.yml", "path to the yml configuration file")
	cmd.Flags().IntVar(&buckets, "buckets", hashtable.DefaultBuckets, "bucket count of the player table")

	return cmd
}

// Command racingcar runs the racing car game in the terminal.
//
// It reads comma separated car names and a round count from standard input,
// prints every car's progress after each round and announces the winners.
//
// Subcommands:
//  1. validate – checks rule files and lists every problem found
//  2. analyze  – runs many silent races and prints win shares
//
// Flags and RACINGCAR_* environment variables (also read from a .env file)
// select the rule file, the random seed and the log output.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/racingcar/game/analysis"
	"github.com/wricardo/racingcar/game/config"
	"github.com/wricardo/racingcar/game/engine"
	"github.com/wricardo/racingcar/game/input"
	"github.com/wricardo/racingcar/game/runner"
	"github.com/wricardo/racingcar/validate"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "racingcar"
)

var errInvalidConfigs = errors.New("some configurations are invalid")

// main loads .env, runs the command and maps any error to exit status 1.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	if err := run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run builds the command tree and reports a returned error once, on stderr.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	err := newCommand(stdin, stdout, stderr).Run(ctx, args)
	if err != nil {
		fmt.Fprintln(stderr, runner.FormatError(err))
	}
	return err
}

func newCommand(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      AppName,
		Usage:     "race cars in the terminal",
		Version:   Version,
		Writer:       stdout,
		ErrWriter:    stderr,
		OnUsageError: returnUsageError,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "rule file (.yaml, .yml, .json or .jsonc)",
				Sources: cli.EnvVars("RACINGCAR_CONFIG"),
			},
			&cli.Uint64Flag{
				Name:    "seed",
				Usage:   "random seed, 0 picks a new one every run",
				Sources: cli.EnvVars("RACINGCAR_SEED"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "debug, info, warn or error",
				Sources: cli.EnvVars("RACINGCAR_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				Usage:   "text or json",
				Sources: cli.EnvVars("RACINGCAR_LOG_FORMAT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			gameConfig, err := loadGameConfig(cmd)
			if err != nil {
				return err
			}

			logger := newLogger(cmd.String("log-level"), cmd.String("log-format"), stderr)
			picker := engine.NewRandomPicker(cmd.Uint64("seed"))

			_, err = runner.NewRunner(gameConfig, picker, stdin, stdout, logger).Play(ctx)
			return err
		},
		Commands: []*cli.Command{
			{
				Name:         "validate",
				Usage:        "check rule files",
				ArgsUsage:    "FILE...",
				OnUsageError: returnUsageError,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					paths := cmd.Args().Slice()
					if len(paths) == 0 {
						return errors.New("at least one rule file is required")
					}
					if !validate.Report(stdout, validate.Files(paths)) {
						return errInvalidConfigs
					}
					return nil
				},
			},
			{
				Name:         "analyze",
				Usage:        "run many silent races and print win shares",
				OnUsageError: returnUsageError,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "cars", Value: "pobi,woni,jun", Usage: "comma separated car names"},
					&cli.IntFlag{Name: "rounds", Value: 5, Usage: "rounds per race"},
					&cli.IntFlag{Name: "races", Value: 1000, Usage: "number of races"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					gameConfig, err := loadGameConfig(cmd)
					if err != nil {
						return err
					}

					names, err := input.ParseCarNames(cmd.String("cars"), gameConfig.MaxNameLength)
					if err != nil {
						return err
					}

					picker := engine.NewRandomPicker(cmd.Uint64("seed"))
					summary, err := analysis.Simulate(gameConfig, names, cmd.Int("rounds"), cmd.Int("races"), picker)
					if err != nil {
						return err
					}
					return summary.Write(stdout)
				},
			},
		},
	}
}

// returnUsageError hands flag errors back to run, which reports them once
func returnUsageError(ctx context.Context, cmd *cli.Command, err error, isSubcommand bool) error {
	return err
}

// loadGameConfig returns the rule file named by --config, or the defaults
func loadGameConfig(cmd *cli.Command) (*engine.GameConfig, error) {
	path := cmd.String("config")
	if path == "" {
		return engine.DefaultGameConfig(), nil
	}

	gameConfig, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return gameConfig, nil
}

package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/wricardo/racingcar/game/engine"
	"github.com/wricardo/racingcar/game/input"
)

// ErrNoInput is returned when input ends before a line could be read
var ErrNoInput = errors.New("no input")

// Result is the outcome of a finished game
type Result struct {
	Names    []string
	Rounds   int
	Progress []int
	Winners  []string
}

// Runner plays a single game over a reader and a writer
type Runner struct {
	config *engine.GameConfig
	picker engine.NumberPicker
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

// NewRunner creates a runner. A nil logger discards log output.
func NewRunner(config *engine.GameConfig, picker engine.NumberPicker, in io.Reader, out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		config: config,
		picker: picker,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Play runs the whole game: names, round count, race, winners
func (r *Runner) Play(ctx context.Context) (*Result, error) {
	names, err := r.ReadCarNames()
	if err != nil {
		return nil, err
	}

	rounds, err := r.ReadRoundCount()
	if err != nil {
		return nil, err
	}

	progress, err := r.RunRace(ctx, names, rounds)
	if err != nil {
		return nil, err
	}

	winners, err := r.PrintWinners(names, progress)
	if err != nil {
		return nil, err
	}

	return &Result{
		Names:    names,
		Rounds:   rounds,
		Progress: progress,
		Winners:  winners,
	}, nil
}

// ReadCarNames prompts for and validates the car names
func (r *Runner) ReadCarNames() ([]string, error) {
	line, err := r.readLine(r.config.Messages.CarNamesPrompt)
	if err != nil {
		return nil, err
	}

	names, err := input.ParseCarNames(line, r.config.MaxNameLength)
	if err != nil {
		r.logger.Debug("car names rejected", "line", line, "error", err)
		return nil, err
	}

	r.logger.Debug("car names accepted", "names", names)
	return names, nil
}

// ReadRoundCount prompts for and validates the number of rounds
func (r *Runner) ReadRoundCount() (int, error) {
	line, err := r.readLine(r.config.Messages.RoundCountPrompt)
	if err != nil {
		return 0, err
	}

	rounds, err := input.ParseRoundCount(line)
	if err != nil {
		r.logger.Debug("round count rejected", "line", line, "error", err)
		return 0, err
	}

	return rounds, nil
}

// RunRace plays every round, rendering all cars after each one, and returns
// the final progress vector.
func (r *Runner) RunRace(ctx context.Context, names []string, rounds int) ([]int, error) {
	race, err := r.newRace(names)
	if err != nil {
		return nil, err
	}

	r.logger.Info("race started", "cars", len(names), "rounds", rounds)

	if _, err := io.WriteString(r.out, "\n"); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}

	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result := race.PlayRound()
		r.logger.Debug("round played", "round", result.Round, "advanced", result.Advanced)

		if _, err := io.WriteString(r.out, FormatRound(result.Cars)); err != nil {
			return nil, fmt.Errorf("failed to write output: %w", err)
		}
	}

	r.logger.Debug("race complete", "rounds", race.GetRound())
	return race.GetProgress(), nil
}

// newRace starts a race over the runner's rules and random source
func (r *Runner) newRace(names []string) (engine.Engine, error) {
	race, err := engine.NewEngine(r.config, names, r.picker)
	if err != nil {
		return nil, fmt.Errorf("failed to start race: %w", err)
	}
	return race, nil
}

// PrintWinners prints the winner line and returns the winners
func (r *Runner) PrintWinners(names []string, progress []int) ([]string, error) {
	winners := engine.Winners(names, progress)

	if _, err := fmt.Fprintln(r.out, FormatWinners(r.config.Messages.WinnerLabel, winners)); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}

	r.logger.Info("race finished", "winners", winners, "progress", progress)
	return winners, nil
}

// readLine shows the prompt and reads one line without its line ending
func (r *Runner) readLine(prompt string) (string, error) {
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

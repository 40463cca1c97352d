// Package analysis runs many silent races with one rule set and summarises
// how often each car wins and how often races end in a tie.
package analysis

import (
	"fmt"
	"io"

	"github.com/wricardo/racingcar/game/engine"
)

// Summary is the aggregate of a batch of races
type Summary struct {
	Names              []string
	Rounds             int
	Races              int
	Wins               []int
	Ties               int
	AdvanceProbability float64
	MeanProgress       []float64
}

// Simulate plays races races of rounds rounds each. A car that shares the
// lead counts as a win for every car in the tie.
func Simulate(config *engine.GameConfig, names []string, rounds, races int, picker engine.NumberPicker) (*Summary, error) {
	if rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", rounds)
	}
	if races <= 0 {
		return nil, fmt.Errorf("races must be positive, got %d", races)
	}

	summary := &Summary{
		Names:              names,
		Rounds:             rounds,
		Races:              races,
		Wins:               make([]int, len(names)),
		AdvanceProbability: engine.AdvanceProbability(config),
		MeanProgress:       make([]float64, len(names)),
	}

	totals := make([]int, len(names))
	for i := 0; i < races; i++ {
		race, err := newRace(config, names, picker)
		if err != nil {
			return nil, err
		}

		progress := race.Run(rounds, nil)
		best := engine.MaxProgress(progress)
		leaders := 0
		for j, p := range progress {
			totals[j] += p
			if p == best {
				summary.Wins[j]++
				leaders++
			}
		}
		if leaders > 1 {
			summary.Ties++
		}
	}

	for j, total := range totals {
		summary.MeanProgress[j] = float64(total) / float64(races)
	}

	return summary, nil
}

// WinRate returns the share of races car i won or tied for
func (s *Summary) WinRate(i int) float64 {
	if s.Races == 0 || i < 0 || i >= len(s.Wins) {
		return 0
	}
	return float64(s.Wins[i]) / float64(s.Races)
}

// Write prints a human-readable report
func (s *Summary) Write(w io.Writer) error {
	fmt.Fprintf(w, "Races: %d x %d rounds\n", s.Races, s.Rounds)
	fmt.Fprintf(w, "Advance probability per draw: %.3f\n", s.AdvanceProbability)
	fmt.Fprintf(w, "Expected progress per car: %.2f\n", s.AdvanceProbability*float64(s.Rounds))
	for i, name := range s.Names {
		fmt.Fprintf(w, "  %-5s wins %6d (%5.1f%%)  mean progress %.2f\n",
			name, s.Wins[i], s.WinRate(i)*100, s.MeanProgress[i])
	}
	_, err := fmt.Fprintf(w, "Tied races: %d (%.1f%%)\n", s.Ties, float64(s.Ties)/float64(s.Races)*100)
	return err
}

func newRace(config *engine.GameConfig, names []string, picker engine.NumberPicker) (engine.Engine, error) {
	race, err := engine.NewEngine(config, names, picker)
	if err != nil {
		return nil, err
	}
	return race, nil
}

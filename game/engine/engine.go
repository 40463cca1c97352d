package engine

import "fmt"

// Engine provides the main interface for race operations
type Engine interface {
	// Race state
	GetRound() int
	GetCars() []Car
	GetProgress() []int

	// Rounds
	PlayRound() RoundResult
	Run(rounds int, onRound func(RoundResult)) []int

	// Results
	Winners() []string
}

var _ Engine = (*RaceEngine)(nil)

// RaceEngine implements the Engine interface
type RaceEngine struct {
	state  *RaceState
	config *GameConfig
	picker NumberPicker
}

// NewEngine creates a race for the given cars. The names are used as given;
// length checks belong to the input layer.
func NewEngine(config *GameConfig, names []string, picker NumberPicker) (*RaceEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("at least one car is required")
	}
	if picker == nil {
		return nil, fmt.Errorf("number picker cannot be nil")
	}

	return &RaceEngine{
		config: config,
		picker: picker,
		state:  InitRaceState(names),
	}, nil
}

// InitRaceState places every car at the start line
func InitRaceState(names []string) *RaceState {
	cars := make([]Car, len(names))
	for i, name := range names {
		cars[i] = Car{Name: name}
	}
	return &RaceState{Cars: cars}
}

// GetRound returns the number of rounds played so far
func (e *RaceEngine) GetRound() int {
	return e.state.Round
}

// GetCars returns a snapshot of the cars
func (e *RaceEngine) GetCars() []Car {
	return e.state.Snapshot()
}

// GetProgress returns the progress vector
func (e *RaceEngine) GetProgress() []int {
	return e.state.Progress()
}

// PlayRound advances the race by one round
func (e *RaceEngine) PlayRound() RoundResult {
	advanced := e.state.MoveCars(e.picker, e.config)
	return RoundResult{
		Round:    e.state.Round,
		Cars:     e.state.Snapshot(),
		Advanced: advanced,
	}
}

// Run plays the given number of rounds, calling onRound after each one,
// and returns the final progress vector.
func (e *RaceEngine) Run(rounds int, onRound func(RoundResult)) []int {
	for i := 0; i < rounds; i++ {
		result := e.PlayRound()
		if onRound != nil {
			onRound(result)
		}
	}
	return e.GetProgress()
}

// Winners returns the cars sharing the highest position
func (e *RaceEngine) Winners() []string {
	return Winners(CarNames(e.state.Cars), e.state.Progress())
}

package engine

const (
	// Default rule values
	DefaultMaxNameLength    = 5
	DefaultMinDraw          = 1
	DefaultMaxDraw          = 9
	DefaultAdvanceThreshold = 4

	// Validation constants
	MinNameLength = 1
	MaxNameLength = 64
	MaxDrawValue  = 1000

	// ProgressMark is drawn once per step a car has advanced
	ProgressMark = "-"
)

// Car is a single racer and its current position
type Car struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// Messages holds the texts shown to the player
type Messages struct {
	CarNamesPrompt   string `json:"car_names_prompt" yaml:"car_names_prompt"`
	RoundCountPrompt string `json:"round_count_prompt" yaml:"round_count_prompt"`
	WinnerLabel      string `json:"winner_label" yaml:"winner_label"`
}

// GameConfig represents the race rules
type GameConfig struct {
	Name             string   `json:"name" yaml:"name"`
	MaxNameLength    int      `json:"max_name_length" yaml:"max_name_length"`
	MinDraw          int      `json:"min_draw" yaml:"min_draw"`
	MaxDraw          int      `json:"max_draw" yaml:"max_draw"`
	AdvanceThreshold int      `json:"advance_threshold" yaml:"advance_threshold"`
	Messages         Messages `json:"messages" yaml:"messages"`
}

// RaceState represents the complete race state
type RaceState struct {
	Cars  []Car `json:"cars"`
	Round int   `json:"round"`
}

// RoundResult describes the outcome of one round
type RoundResult struct {
	Round    int    `json:"round"`
	Cars     []Car  `json:"cars"`
	Advanced []bool `json:"advanced"`
}

package engine

import (
	"fmt"
	"strings"
)

// DefaultGameConfig returns the standard rules: names up to 5 characters,
// draws in [1, 9] and an advance on 4 or more.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Name:             "classic",
		MaxNameLength:    DefaultMaxNameLength,
		MinDraw:          DefaultMinDraw,
		MaxDraw:          DefaultMaxDraw,
		AdvanceThreshold: DefaultAdvanceThreshold,
		Messages: Messages{
			CarNamesPrompt:   "경주할 자동차 이름을 입력하세요.(이름은 쉼표(,) 기준으로 구분)\n",
			RoundCountPrompt: "시도할 횟수는 몇회인가요?\n",
			WinnerLabel:      "최종 우승자 : ",
		},
	}
}

// ConfigProblems lists every rule violation in the configuration.
// An empty result means the configuration is valid.
func ConfigProblems(config *GameConfig) []string {
	if config == nil {
		return []string{"config is required"}
	}

	var problems []string

	if config.Name == "" {
		problems = append(problems, "name is required")
	}

	if config.MaxNameLength < MinNameLength || config.MaxNameLength > MaxNameLength {
		problems = append(problems, fmt.Sprintf("max_name_length must be between %d and %d, got %d",
			MinNameLength, MaxNameLength, config.MaxNameLength))
	}

	// Draw range
	if config.MinDraw < 0 || config.MaxDraw > MaxDrawValue {
		problems = append(problems, fmt.Sprintf("draws must stay within [0, %d], got [%d, %d]",
			MaxDrawValue, config.MinDraw, config.MaxDraw))
	}
	if config.MinDraw >= config.MaxDraw {
		problems = append(problems, fmt.Sprintf("min_draw (%d) must be less than max_draw (%d)",
			config.MinDraw, config.MaxDraw))
	}
	if config.AdvanceThreshold < config.MinDraw || config.AdvanceThreshold > config.MaxDraw {
		problems = append(problems, fmt.Sprintf("advance_threshold must be between min_draw (%d) and max_draw (%d), got %d",
			config.MinDraw, config.MaxDraw, config.AdvanceThreshold))
	}

	// Messages
	if strings.TrimSpace(config.Messages.CarNamesPrompt) == "" {
		problems = append(problems, "messages.car_names_prompt is required")
	}
	if strings.TrimSpace(config.Messages.RoundCountPrompt) == "" {
		problems = append(problems, "messages.round_count_prompt is required")
	}
	if strings.TrimSpace(config.Messages.WinnerLabel) == "" {
		problems = append(problems, "messages.winner_label is required")
	}

	return problems
}

// ValidateGameConfig validates a game configuration for correctness
func ValidateGameConfig(config *GameConfig) error {
	if problems := ConfigProblems(config); len(problems) > 0 {
		return fmt.Errorf("config validation: %s", strings.Join(problems, "; "))
	}
	return nil
}

// AdvanceProbability returns the chance that a single draw moves a car
func AdvanceProbability(config *GameConfig) float64 {
	span := config.MaxDraw - config.MinDraw + 1
	if span <= 0 {
		return 0
	}
	hits := config.MaxDraw - config.AdvanceThreshold + 1
	if hits < 0 {
		hits = 0
	}
	return float64(hits) / float64(span)
}

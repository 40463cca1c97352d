// Package config loads race rule files for the racing car game.
//
// Rule files are optional. When one is given it is decoded on top of
// engine.DefaultGameConfig, so a file only needs the fields it changes.
//
// Formats:
//   - .yaml / .yml: YAML, decoded with gopkg.in/yaml.v3
//   - .json / .jsonc: JSON, comments and trailing commas allowed
//
// Example (rules.yaml):
//
//	name: strict
//	advance_threshold: 6
//	messages:
//	  winner_label: "final winner : "
//
// Usage:
//
//	gameConfig, err := config.LoadConfig("rules.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Validation:
//
// LoadConfig validates the merged result with engine.ValidateGameConfig.
// Decode skips validation so callers such as the validate command can
// report every problem at once.
package config

// Package engine provides the core race logic for the racing car game.
//
// The engine package implements the game mechanics including:
//   - Per-round random advancement of every car
//   - The progress vector and its snapshots
//   - Winner selection with ties
//   - Rule configuration defaults and validation
//
// Core Types:
//
// The Engine interface defines the main contract for race operations,
// implemented by RaceEngine. RaceState holds the cars and the current round,
// while GameConfig defines the draw range, the advance threshold and the
// messages shown to the player.
//
// Usage:
//
//	config := engine.DefaultGameConfig()
//	race, err := engine.NewEngine(config, []string{"pobi", "woni"}, engine.NewRandomPicker(0))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	race.Run(5, func(r engine.RoundResult) {
//		fmt.Println(r.Round)
//	})
//	winners := race.Winners()
//
// Game Rules:
//
// Every round each car draws a number in [MinDraw, MaxDraw]. A draw at or
// above AdvanceThreshold moves the car one step forward. After the last
// round every car sharing the highest position wins.
package engine

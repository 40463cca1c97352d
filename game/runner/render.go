package runner

import (
	"strings"

	"github.com/wricardo/racingcar/game/engine"
)

// ErrorPrefix marks every error line shown to the player
const ErrorPrefix = "[ERROR] : "

// FormatProgressLine renders one car as "<name> : <dashes>"
func FormatProgressLine(car engine.Car) string {
	return car.Name + " : " + strings.Repeat(engine.ProgressMark, car.Position)
}

// FormatRound renders every car of a round followed by the blank separator line
func FormatRound(cars []engine.Car) string {
	var b strings.Builder
	for _, car := range cars {
		b.WriteString(FormatProgressLine(car))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// FormatWinners renders the label followed by each winner and a space
func FormatWinners(label string, winners []string) string {
	var b strings.Builder
	b.WriteString(label)
	for _, name := range winners {
		b.WriteString(name)
		b.WriteString(" ")
	}
	return b.String()
}

// FormatError renders an error the way it is shown to the player
func FormatError(err error) string {
	return ErrorPrefix + err.Error()
}

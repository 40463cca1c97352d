// Package validate checks race rule files and reports every problem found
// in each one, rather than stopping at the first.
package validate

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/wricardo/racingcar/game/config"
	"github.com/wricardo/racingcar/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Messages contains informational lines; otherwise it
// lists the validation errors that were found.
type ValidationResult struct {
	File     string
	Valid    bool
	Messages []string
}

// File decodes and validates a single rule file
func File(path string) ValidationResult {
	result := ValidationResult{
		File:     filepath.Base(path),
		Valid:    true,
		Messages: []string{},
	}

	gameConfig, err := config.ReadConfig(path)
	if err != nil {
		result.Valid = false
		result.Messages = append(result.Messages, err.Error())
		return result
	}

	if problems := engine.ConfigProblems(gameConfig); len(problems) > 0 {
		result.Valid = false
		result.Messages = append(result.Messages, problems...)
		return result
	}

	result.Messages = append(result.Messages,
		fmt.Sprintf("✓ Name: %s", gameConfig.Name),
		fmt.Sprintf("✓ Max name length: %d", gameConfig.MaxNameLength),
		fmt.Sprintf("✓ Draw range: [%d, %d]", gameConfig.MinDraw, gameConfig.MaxDraw),
		fmt.Sprintf("✓ Advance on %d or more (p=%.3f)", gameConfig.AdvanceThreshold, engine.AdvanceProbability(gameConfig)),
	)
	return result
}

// Files validates every path in order
func Files(paths []string) []ValidationResult {
	results := make([]ValidationResult, 0, len(paths))
	for _, path := range paths {
		results = append(results, File(path))
	}
	return results
}

// Report prints the results and returns whether all of them are valid
func Report(w io.Writer, results []ValidationResult) bool {
	allValid := true
	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Messages {
				fmt.Fprintln(w, "  "+info)
			}
			continue
		}

		allValid = false
		fmt.Fprintln(w, "❌ INVALID")
		for _, msg := range result.Messages {
			fmt.Fprintln(w, "  ❌ "+msg)
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(w, "✅ All configurations are valid!")
	} else {
		fmt.Fprintln(w, "❌ Some configurations have errors")
	}
	return allValid
}
